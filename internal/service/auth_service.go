package service

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	SignupStudent(req dto.SignupRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.UserResponse, error)
	RequestAdmin(req dto.AdminSignupRequest) (*dto.AdminRequestResponse, error)
	ListPendingAdminRequests() ([]dto.AdminRequestResponse, error)
	ApproveAdminRequest(id uint) (*dto.SiteResponse, error)
	RejectAdminRequest(id uint) error
}

type authService struct {
	userRepo    repository.UserRepository
	siteRepo    repository.SiteRepository
	requestRepo repository.AdminRequestRepository
	db          *gorm.DB // For transactions
}

func NewAuthService(userRepo repository.UserRepository, siteRepo repository.SiteRepository, requestRepo repository.AdminRequestRepository, db *gorm.DB) AuthService {
	return &authService{userRepo: userRepo, siteRepo: siteRepo, requestRepo: requestRepo, db: db}
}

func (s *authService) SignupStudent(req dto.SignupRequest) (*dto.UserResponse, error) {
	site, err := s.siteRepo.FindByCode(req.SiteCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSiteCodeUnknown
	}
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		PublicID:     uuid.NewString(),
		SiteID:       site.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Msg("Failed to create user")
		return nil, err
	}
	log.Info().Uint("user_id", user.ID).Uint("site_id", site.ID).Msg("Student signed up")
	return userResponse(&user), nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return userResponse(user), nil
}

func (s *authService) RequestAdmin(req dto.AdminSignupRequest) (*dto.AdminRequestResponse, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	request := model.AdminRequest{
		Name:         req.Name,
		Email:        req.Email,
		SiteName:     req.SiteName,
		PasswordHash: hash,
		Status:       model.AdminRequestPending,
	}
	if err := s.requestRepo.Create(&request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	log.Info().Uint("request_id", request.ID).Str("site_name", req.SiteName).Msg("Admin access requested")
	return adminRequestResponse(&request), nil
}

func (s *authService) ListPendingAdminRequests() ([]dto.AdminRequestResponse, error) {
	requests, err := s.requestRepo.FindByStatus(model.AdminRequestPending)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, *adminRequestResponse(&r))
	}
	return resp, nil
}

// ApproveAdminRequest provisions the whole tenant in one transaction: the
// site with a fresh join code, the admin user, and the status flip. Either
// everything exists afterwards or nothing does.
func (s *authService) ApproveAdminRequest(id uint) (*dto.SiteResponse, error) {
	request, err := s.requestRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if request.Status != model.AdminRequestPending {
		return nil, fmt.Errorf("request %d is already %s", id, request.Status)
	}

	var site model.Site
	err = s.db.Transaction(func(tx *gorm.DB) error {
		code, err := s.freshSiteCode(tx)
		if err != nil {
			return err
		}
		site = model.Site{Name: request.SiteName, Code: code}
		if err := tx.Create(&site).Error; err != nil {
			return err
		}
		admin := model.User{
			PublicID:     uuid.NewString(),
			SiteID:       site.ID,
			Name:         request.Name,
			Email:        request.Email,
			PasswordHash: request.PasswordHash,
			IsAdmin:      true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		request.Status = model.AdminRequestApproved
		return tx.Save(request).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("request_id", id).Msg("Failed to approve admin request")
		return nil, err
	}
	log.Info().Uint("site_id", site.ID).Str("code", site.Code).Msg("Admin request approved, site provisioned")
	return &dto.SiteResponse{ID: site.ID, Name: site.Name, Code: site.Code}, nil
}

func (s *authService) RejectAdminRequest(id uint) error {
	request, err := s.requestRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	request.Status = model.AdminRequestRejected
	return s.requestRepo.Update(request)
}

// siteCodeAlphabet omits ambiguous characters (0/O, 1/I) since codes are
// read aloud in classrooms.
const siteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateSiteCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = siteCodeAlphabet[int(b)%len(siteCodeAlphabet)]
	}
	return string(buf), nil
}

func (s *authService) freshSiteCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := generateSiteCode()
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&model.Site{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique site code")
}

func userResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		PublicID: u.PublicID,
		Name:     u.Name,
		Email:    u.Email,
		SiteID:   u.SiteID,
		IsAdmin:  u.IsAdmin,
	}
}

func adminRequestResponse(r *model.AdminRequest) *dto.AdminRequestResponse {
	return &dto.AdminRequestResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		SiteName:  r.SiteName,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
