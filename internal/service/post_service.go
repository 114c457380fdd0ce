package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// excerptLength bounds the plain-text preview shown in post listings.
const excerptLength = 180

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

type PostService interface {
	Create(siteID uint, req dto.PostCreateRequest) (*dto.PostResponse, error)
	List(siteID uint) ([]dto.PostListItem, error)
	Get(siteID, id uint) (*dto.PostResponse, error)
	Update(siteID, id uint, req dto.PostUpdateRequest) (*dto.PostResponse, error)
	Delete(siteID, id uint) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(siteID uint, req dto.PostCreateRequest) (*dto.PostResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrPostIncomplete
	}
	post := model.Post{SiteID: siteID, Title: title, Content: content}
	if err := s.postRepo.Create(&post); err != nil {
		log.Error().Err(err).Msg("Failed to create post")
		return nil, err
	}
	log.Info().Uint("post_id", post.ID).Msg("Post created")
	return postResponse(&post), nil
}

func (s *postService) List(siteID uint) ([]dto.PostListItem, error) {
	posts, err := s.postRepo.FindAllBySite(siteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.PostListItem{
			ID:        p.ID,
			Title:     p.Title,
			Excerpt:   excerpt(p.Content, excerptLength),
			CreatedAt: p.CreatedAt,
		})
	}
	return items, nil
}

func (s *postService) Get(siteID, id uint) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindBySite(siteID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return postResponse(post), nil
}

func (s *postService) Update(siteID, id uint, req dto.PostUpdateRequest) (*dto.PostResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrPostIncomplete
	}
	err := s.postRepo.Update(siteID, id, title, content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(siteID, id)
}

func (s *postService) Delete(siteID, id uint) error {
	err := s.postRepo.Delete(siteID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func postResponse(post *model.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// excerpt strips markup, collapses whitespace and cuts the text at max
// runes, marking the cut with an ellipsis.
func excerpt(content string, max int) string {
	text := strings.TrimSpace(spacePattern.ReplaceAllString(tagPattern.ReplaceAllString(content, " "), " "))
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
