package service

import (
	"errors"
	"math"
	"time"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService scores answer sheets server side and persists attempts.
// Clients never submit a score, only their selections.
type SubmissionService interface {
	SubmitExam(siteID, userID uint, studentName string, examID uint, req dto.AttemptSubmitRequest) (*dto.AttemptResponse, error)
	SubmitQuiz(siteID, userID uint, studentName string, quizID uint, req dto.AttemptSubmitRequest) (*dto.AttemptResponse, error)
}

type submissionService struct {
	examRepo    repository.ExamRepository
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	now         func() time.Time
}

func NewSubmissionService(examRepo repository.ExamRepository, quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) SubmissionService {
	return &submissionService{
		examRepo:    examRepo,
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		now:         time.Now,
	}
}

type tally struct {
	total   int
	correct int
	wrong   int
	skipped int
}

// score grades a sheet against the question set. A selection of -1 (or any
// negative) is a skip; so is a question missing from the sheet entirely.
// Answers for unknown question ids are ignored.
func score(questions []model.Question, answers []dto.AnswerSubmission) tally {
	selected := make(map[uint]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedIndex
	}

	t := tally{total: len(questions)}
	for _, q := range questions {
		idx, ok := selected[q.ID]
		if !ok || idx < 0 {
			t.skipped++
			continue
		}
		if idx == q.CorrectIndex {
			t.correct++
		} else {
			t.wrong++
		}
	}
	return t
}

func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

func (s *submissionService) SubmitExam(siteID, userID uint, studentName string, examID uint, req dto.AttemptSubmitRequest) (*dto.AttemptResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if exam.SiteID != siteID {
		return nil, ErrForbidden
	}

	now := s.now()
	if now.Before(exam.ScheduledAt) {
		return nil, ErrWindowNotOpen
	}
	if exam.Finished(now) {
		return nil, ErrWindowClosed
	}

	t := score(exam.Questions, req.Answers)
	attempt := model.ExamAttempt{
		ExamID:           examID,
		UserID:           userID,
		StudentName:      studentName,
		TotalQuestions:   t.total,
		CorrectAnswers:   t.correct,
		WrongAnswers:     t.wrong,
		SkippedQuestions: t.skipped,
		StartTime:        req.StartTime,
		EndTime:          now,
		TotalTimeSeconds: req.ElapsedSeconds,
	}

	// The unique index on (exam_id, user_id) decides races between
	// concurrent submissions; losing the insert means someone already has
	// a scored row.
	if err := s.attemptRepo.CreateExamAttempt(&attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Uint("exam_id", examID).Uint("user_id", userID).Msg("Duplicate exam submission rejected")
			return nil, ErrAlreadyAttempted
		}
		log.Error().Err(err).Uint("exam_id", examID).Msg("Failed to persist exam attempt")
		return nil, err
	}

	return examAttemptResponse(&attempt), nil
}

func (s *submissionService) SubmitQuiz(siteID, userID uint, studentName string, quizID uint, req dto.AttemptSubmitRequest) (*dto.AttemptResponse, error) {
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

	t := score(quiz.Questions, req.Answers)
	attempt := model.QuizAttempt{
		QuizID:           quizID,
		UserID:           userID,
		StudentName:      studentName,
		TotalQuestions:   t.total,
		CorrectAnswers:   t.correct,
		WrongAnswers:     t.wrong,
		SkippedQuestions: t.skipped,
		StartTime:        req.StartTime,
		EndTime:          s.now(),
		TotalTimeSeconds: req.ElapsedSeconds,
	}
	if err := s.attemptRepo.CreateQuizAttempt(&attempt); err != nil {
		log.Error().Err(err).Uint("quiz_id", quizID).Msg("Failed to persist quiz attempt")
		return nil, err
	}
	return quizAttemptResponse(&attempt), nil
}

func examAttemptResponse(a *model.ExamAttempt) *dto.AttemptResponse {
	return &dto.AttemptResponse{
		ID:               a.ID,
		StudentName:      a.StudentName,
		TotalQuestions:   a.TotalQuestions,
		CorrectAnswers:   a.CorrectAnswers,
		WrongAnswers:     a.WrongAnswers,
		SkippedQuestions: a.SkippedQuestions,
		TotalTimeSeconds: a.TotalTimeSeconds,
		Percentage:       percentage(a.CorrectAnswers, a.TotalQuestions),
		CreatedAt:        a.CreatedAt,
	}
}

func quizAttemptResponse(a *model.QuizAttempt) *dto.AttemptResponse {
	return &dto.AttemptResponse{
		ID:               a.ID,
		StudentName:      a.StudentName,
		TotalQuestions:   a.TotalQuestions,
		CorrectAnswers:   a.CorrectAnswers,
		WrongAnswers:     a.WrongAnswers,
		SkippedQuestions: a.SkippedQuestions,
		TotalTimeSeconds: a.TotalTimeSeconds,
		Percentage:       percentage(a.CorrectAnswers, a.TotalQuestions),
		CreatedAt:        a.CreatedAt,
	}
}
