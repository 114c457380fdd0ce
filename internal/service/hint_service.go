package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var ErrHintUnavailable = errors.New("hint generation is not configured")

// HintService generates a study hint for a question without revealing the
// answer, and caches it on the question row so each hint is paid for once.
type HintService interface {
	HintForQuestion(ctx context.Context, siteID, questionID uint) (*dto.HintResponse, error)
}

type hintService struct {
	model        *genai.GenerativeModel
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	examRepo     repository.ExamRepository
}

func NewHintService(cfg *config.Config, questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository, examRepo repository.ExamRepository) (HintService, error) {
	s := &hintService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		examRepo:     examRepo,
	}
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Hint generation will be unavailable.")
		return s, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	s.model = client.GenerativeModel("gemini-1.5-flash")
	return s, nil
}

func (s *hintService) HintForQuestion(ctx context.Context, siteID, questionID uint) (*dto.HintResponse, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(siteID, question.QuizID, question.ExamID); err != nil {
		return nil, err
	}

	if question.Hint != nil && *question.Hint != "" {
		return &dto.HintResponse{QuestionID: questionID, Hint: *question.Hint}, nil
	}
	if s.model == nil {
		return nil, ErrHintUnavailable
	}

	prompt := fmt.Sprintf(
		"You are a tutor. Give a one-sentence hint that nudges a student toward answering the following multiple-choice question. Do not reveal or name the correct option.\n\nQuestion: %s\nOptions: %s",
		question.Text, strings.Join(question.Options, ", "),
	)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Uint("question_id", questionID).Msg("Hint generation failed")
		return nil, err
	}
	hint := extractText(resp)
	if hint == "" {
		return nil, errors.New("empty hint from model")
	}

	if err := s.questionRepo.UpdateHint(questionID, hint); err != nil {
		log.Error().Err(err).Uint("question_id", questionID).Msg("Failed to cache hint")
	}
	return &dto.HintResponse{QuestionID: questionID, Hint: hint}, nil
}

// checkOwnership walks the question's parent to its site.
func (s *hintService) checkOwnership(siteID uint, quizID, examID *uint) error {
	switch {
	case quizID != nil:
		quiz, err := s.quizRepo.FindByID(*quizID)
		if err != nil {
			return ErrNotFound
		}
		if quiz.SiteID != siteID {
			return ErrForbidden
		}
	case examID != nil:
		exam, err := s.examRepo.FindByID(*examID)
		if err != nil {
			return ErrNotFound
		}
		if exam.SiteID != siteID {
			return ErrForbidden
		}
	default:
		return ErrNotFound
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
