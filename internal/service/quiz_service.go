package service

import (
	"errors"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/ingest"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/session"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	Create(siteID uint, req dto.QuizCreateRequest, file []byte) (*dto.QuizAdminResponse, error)
	List(siteID uint) ([]dto.QuizResponse, error)
	Get(siteID, id uint) (*dto.QuizResponse, error)
	GetForPlay(siteID, id uint) (*dto.QuizAdminResponse, error)
	ReplaceContent(siteID, id uint, req dto.ContentRequest, file []byte) (*dto.QuizAdminResponse, error)
	UpdateTitle(siteID, id uint, title string) error
	Delete(siteID, id uint) error
	ExportCSV(siteID, id uint) (string, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
	content  ContentService
	cfg      *config.Config
}

func NewQuizService(quizRepo repository.QuizRepository, content ContentService, cfg *config.Config) QuizService {
	return &quizService{quizRepo: quizRepo, content: content, cfg: cfg}
}

func (s *quizService) Create(siteID uint, req dto.QuizCreateRequest, file []byte) (*dto.QuizAdminResponse, error) {
	questions, err := s.content.BuildQuestions(req.Content, file)
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		SiteID:    siteID,
		Title:     req.Title,
		Questions: questions,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		return nil, err
	}
	log.Info().Uint("quiz_id", quiz.ID).Int("questions", len(questions)).Msg("Quiz created")
	return adminQuizResponse(&quiz), nil
}

func (s *quizService) List(siteID uint) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAllBySiteWithQuestionCount(siteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		resp = append(resp, dto.QuizResponse{
			ID:            q.ID,
			Title:         q.Title,
			QuestionCount: q.QuestionCount,
			CreatedAt:     q.CreatedAt,
		})
	}
	return resp, nil
}

func (s *quizService) Get(siteID, id uint) (*dto.QuizResponse, error) {
	quiz, err := s.findOwned(siteID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.QuizResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		CreatedAt:     quiz.CreatedAt,
	}
	copier.Copy(&resp.Questions, &quiz.Questions)
	return &resp, nil
}

// GetForPlay includes the answer key: practice sessions reveal correctness
// as soon as an option is picked, so the client needs it up front. The
// countdown budget scales with the question count.
func (s *quizService) GetForPlay(siteID, id uint) (*dto.QuizAdminResponse, error) {
	quiz, err := s.findOwned(siteID, id)
	if err != nil {
		return nil, err
	}
	resp := adminQuizResponse(quiz)
	resp.TimeLimitSeconds = int(session.QuizBudget(len(quiz.Questions), s.cfg.Quiz.SecondsPerQuestion).Seconds())
	return resp, nil
}

func (s *quizService) ReplaceContent(siteID, id uint, req dto.ContentRequest, file []byte) (*dto.QuizAdminResponse, error) {
	if _, err := s.findOwned(siteID, id); err != nil {
		return nil, err
	}
	questions, err := s.content.BuildQuestions(req, file)
	if err != nil {
		return nil, err
	}
	if err := s.quizRepo.ReplaceQuestions(id, questions); err != nil {
		log.Error().Err(err).Uint("quiz_id", id).Msg("Failed to replace quiz questions")
		return nil, err
	}
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	return adminQuizResponse(quiz), nil
}

func (s *quizService) UpdateTitle(siteID, id uint, title string) error {
	if _, err := s.findOwned(siteID, id); err != nil {
		return err
	}
	return s.quizRepo.UpdateTitle(id, title)
}

func (s *quizService) Delete(siteID, id uint) error {
	if _, err := s.findOwned(siteID, id); err != nil {
		return err
	}
	return s.quizRepo.Delete(id)
}

// ExportCSV renders the question set in the delimited upload format, so an
// export can be re-imported unchanged.
func (s *quizService) ExportCSV(siteID, id uint) (string, error) {
	quiz, err := s.findOwned(siteID, id)
	if err != nil {
		return "", err
	}
	return ingest.WriteCSV(toParsed(quiz.Questions)), nil
}

func toParsed(questions []model.Question) []ingest.ParsedQuestion {
	parsed := make([]ingest.ParsedQuestion, 0, len(questions))
	for _, q := range questions {
		parsed = append(parsed, ingest.ParsedQuestion{
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Hint:         q.Hint,
		})
	}
	return parsed
}

func (s *quizService) findOwned(siteID, id uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if quiz.SiteID != siteID {
		return nil, ErrForbidden
	}
	return quiz, nil
}

func adminQuizResponse(quiz *model.Quiz) *dto.QuizAdminResponse {
	resp := dto.QuizAdminResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		CreatedAt:     quiz.CreatedAt,
	}
	copier.Copy(&resp.Questions, &quiz.Questions)
	return &resp
}
