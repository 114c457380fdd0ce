package service

import (
	"errors"
	"sync"
	"time"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PlayService runs server-driven practice sessions. The countdown, the
// select-once answer bookkeeping and the scoring live in process; a
// completed run is persisted as a regular quiz attempt, whether the
// participant finished or the clock ran out.
type PlayService interface {
	Start(siteID, userID uint, studentName string, quizID uint) (*dto.PlayStateResponse, error)
	Answer(userID uint, sessionID string, selectedIndex int) (*dto.PlayStateResponse, error)
	Next(userID uint, sessionID string) (*dto.PlayStateResponse, error)
	State(userID uint, sessionID string) (*dto.PlayStateResponse, error)
	Finish(userID uint, sessionID string) (*dto.PlayStateResponse, error)
}

type playSession struct {
	id        string
	userID    uint
	quizID    uint
	questions []model.Question
	engine    *session.Engine
}

type playService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	cfg         *config.Config

	clock session.Clock // nil means wall time

	mu       sync.Mutex
	sessions map[string]*playSession
}

func NewPlayService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository, cfg *config.Config) PlayService {
	return &playService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		cfg:         cfg,
		sessions:    make(map[string]*playSession),
	}
}

func (s *playService) Start(siteID, userID uint, studentName string, quizID uint) (*dto.PlayStateResponse, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if quiz.SiteID != siteID {
		return nil, ErrForbidden
	}

	questions := make([]session.Question, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, session.Question{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Hint:         q.Hint,
		})
	}

	now := time.Now
	if s.clock != nil {
		now = s.clock.Now
	}
	startedAt := now()
	opts := []session.Option{
		session.WithBudget(session.QuizBudget(len(questions), s.cfg.Quiz.SecondsPerQuestion)),
		session.WithOnComplete(func(score session.Score) {
			attempt := &model.QuizAttempt{
				QuizID:           quiz.ID,
				UserID:           userID,
				StudentName:      studentName,
				TotalQuestions:   score.Total,
				CorrectAnswers:   score.Correct,
				WrongAnswers:     score.Wrong,
				SkippedQuestions: score.Skipped,
				StartTime:        startedAt,
				EndTime:          startedAt.Add(time.Duration(score.ElapsedSeconds) * time.Second),
				TotalTimeSeconds: score.ElapsedSeconds,
			}
			if err := s.attemptRepo.CreateQuizAttempt(attempt); err != nil {
				log.Error().Err(err).Uint("quiz_id", quiz.ID).Uint("user_id", userID).Msg("Failed to persist play session attempt")
				return
			}
			log.Info().Uint("quiz_id", quiz.ID).Uint("user_id", userID).Int("correct", score.Correct).Msg("Play session completed")
		}),
	}
	if s.clock != nil {
		opts = append(opts, session.WithClock(s.clock))
	}

	engine, err := session.New(questions, opts...)
	if err != nil {
		return nil, err
	}
	if err := engine.Start(); err != nil {
		return nil, err
	}

	ps := &playSession{
		id:        uuid.NewString(),
		userID:    userID,
		quizID:    quiz.ID,
		questions: quiz.Questions,
		engine:    engine,
	}

	s.mu.Lock()
	// One live session per participant and quiz; starting over abandons the
	// previous run without scoring it.
	for sid, old := range s.sessions {
		if old.userID == userID && old.quizID == quiz.ID {
			old.engine.Stop()
			delete(s.sessions, sid)
		}
	}
	s.sessions[ps.id] = ps
	s.mu.Unlock()

	return s.snapshot(ps), nil
}

func (s *playService) Answer(userID uint, sessionID string, selectedIndex int) (*dto.PlayStateResponse, error) {
	ps, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ps.engine.SelectOption(selectedIndex); err != nil {
		return nil, playError(err)
	}
	return s.snapshot(ps), nil
}

func (s *playService) Next(userID uint, sessionID string) (*dto.PlayStateResponse, error) {
	ps, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ps.engine.Next(); err != nil {
		return nil, playError(err)
	}
	return s.snapshot(ps), nil
}

func (s *playService) State(userID uint, sessionID string) (*dto.PlayStateResponse, error) {
	ps, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ps), nil
}

// Finish force-completes the run and forgets the session; the persisted
// attempt is the durable record.
func (s *playService) Finish(userID uint, sessionID string) (*dto.PlayStateResponse, error) {
	ps, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ps.engine.Complete(); err != nil {
		return nil, playError(err)
	}
	resp := s.snapshot(ps)

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return resp, nil
}

// lookup treats a session owned by someone else the same as a missing one.
func (s *playService) lookup(userID uint, sessionID string) (*playSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sessions[sessionID]
	if !ok || ps.userID != userID {
		return nil, ErrNotFound
	}
	return ps, nil
}

func (s *playService) snapshot(ps *playSession) *dto.PlayStateResponse {
	state := ps.engine.State()
	resp := &dto.PlayStateResponse{
		SessionID:        ps.id,
		QuizID:           ps.quizID,
		State:            playStateName(state),
		QuestionIndex:    ps.engine.Index(),
		TotalQuestions:   len(ps.questions),
		RemainingSeconds: ps.engine.RemainingSeconds(),
	}

	if state == session.StateInProgress {
		q := ps.questions[resp.QuestionIndex]
		resp.Question = &dto.QuestionResponse{
			ID:       q.ID,
			Position: q.Position,
			Text:     q.Text,
			Options:  q.Options,
			Hint:     q.Hint,
		}
	}
	if score, err := ps.engine.Score(); err == nil {
		resp.Result = &dto.PlayResultResponse{
			TotalQuestions:   score.Total,
			CorrectAnswers:   score.Correct,
			WrongAnswers:     score.Wrong,
			SkippedQuestions: score.Skipped,
			TotalTimeSeconds: score.ElapsedSeconds,
			Percentage:       score.Percentage,
		}
	}
	return resp
}

func playStateName(state session.State) string {
	switch state {
	case session.StateInProgress:
		return "in_progress"
	case session.StateCompleted:
		return "completed"
	case session.StateReviewing:
		return "reviewing"
	default:
		return "idle"
	}
}

func playError(err error) error {
	switch {
	case errors.Is(err, session.ErrOptionOutOfRange):
		return ErrInvalidOption
	case errors.Is(err, session.ErrNotInProgress):
		return ErrSessionNotActive
	default:
		return err
	}
}
