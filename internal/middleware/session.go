// Package middleware carries the cookie-session layer. Identity is resolved
// once per request and stashed in the gin context; handlers never touch the
// cookie themselves.
package middleware

import (
	"net/http"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	UserID  uint
	SiteID  uint
	Name    string
	Email   string
	IsAdmin bool
}

type Session struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

func NewSession(cfg *config.Config, userRepo repository.UserRepository) *Session {
	return &Session{cfg: cfg, userRepo: userRepo}
}

// SetCookie issues the session cookie carrying the user's public id. The
// public id is an opaque UUID, never the numeric primary key.
func (s *Session) SetCookie(ctx *gin.Context, publicID string) {
	maxAge := s.cfg.Session.MaxAgeDays * 24 * 60 * 60
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.cfg.Session.CookieName, publicID, maxAge, "/", "", s.cfg.Session.SecureCookie, true)
}

func (s *Session) ClearCookie(ctx *gin.Context) {
	ctx.SetCookie(s.cfg.Session.CookieName, "", -1, "/", "", s.cfg.Session.SecureCookie, true)
}

// RequireUser resolves the cookie to an Identity or rejects with 401.
func (s *Session) RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		publicID, err := ctx.Cookie(s.cfg.Session.CookieName)
		if err != nil || publicID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not signed in", Code: dto.ErrCodeGeneric})
			return
		}
		user, err := s.userRepo.FindByPublicID(publicID)
		if err != nil {
			log.Warn().Str("public_id", publicID).Msg("Session cookie references unknown user")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not signed in", Code: dto.ErrCodeGeneric})
			return
		}
		ctx.Set(identityKey, Identity{
			UserID:  user.ID,
			SiteID:  user.SiteID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		})
		ctx.Next()
	}
}

// RequireAdmin runs after RequireUser and rejects non-admin callers.
func (s *Session) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := CurrentIdentity(ctx)
		if !ok || !id.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin access required", Code: dto.ErrCodeGeneric})
			return
		}
		ctx.Next()
	}
}

// RequireSuperAdmin restricts tenant provisioning to the configured account.
func (s *Session) RequireSuperAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := CurrentIdentity(ctx)
		if !ok || s.cfg.SuperAdminEmail == "" || id.Email != s.cfg.SuperAdminEmail {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "super admin access required", Code: dto.ErrCodeGeneric})
			return
		}
		ctx.Next()
	}
}

// CurrentIdentity fetches the Identity resolved by RequireUser.
func CurrentIdentity(ctx *gin.Context) (Identity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
