package service

import (
	"errors"
	"time"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/ingest"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrExamNotFinished gates practice replay: questions with answers are only
// revealed once the scored window has closed for everyone.
var ErrExamNotFinished = errors.New("exam window has not closed yet")

type ExamService interface {
	Create(siteID uint, req dto.ExamCreateRequest, file []byte) (*dto.ExamAdminResponse, error)
	List(siteID, userID uint) ([]dto.ExamResponse, error)
	GetForTake(siteID, userID, id uint) (*dto.ExamResponse, error)
	GetForPractice(siteID, id uint) (*dto.ExamAdminResponse, error)
	GetAdmin(siteID, id uint) (*dto.ExamAdminResponse, error)
	ReplaceContent(siteID, id uint, req dto.ContentRequest, file []byte) (*dto.ExamAdminResponse, error)
	UpdateSchedule(siteID, id uint, req dto.ExamUpdateRequest) error
	Delete(siteID, id uint) error
	ExportCSV(siteID, id uint) (string, error)
}

type examService struct {
	examRepo    repository.ExamRepository
	attemptRepo repository.AttemptRepository
	content     ContentService
	now         func() time.Time
}

func NewExamService(examRepo repository.ExamRepository, attemptRepo repository.AttemptRepository, content ContentService) ExamService {
	return &examService{
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		content:     content,
		now:         time.Now,
	}
}

func (s *examService) Create(siteID uint, req dto.ExamCreateRequest, file []byte) (*dto.ExamAdminResponse, error) {
	questions, err := s.content.BuildQuestions(req.Content, file)
	if err != nil {
		return nil, err
	}

	exam := model.Exam{
		SiteID:          siteID,
		Title:           req.Title,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Questions:       questions,
	}
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		return nil, err
	}
	log.Info().Uint("exam_id", exam.ID).Time("scheduled_at", exam.ScheduledAt).Msg("Exam created")
	return s.adminExamResponse(&exam), nil
}

func (s *examService) List(siteID, userID uint) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAllBySiteWithQuestionCount(siteID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	resp := make([]dto.ExamResponse, 0, len(exams))
	for _, e := range exams {
		item := dto.ExamResponse{
			ID:              e.ID,
			Title:           e.Title,
			ScheduledAt:     e.ScheduledAt,
			DurationMinutes: e.DurationMinutes,
			QuestionCount:   e.QuestionCount,
			Status:          examStatus(&e.Exam, now),
		}
		if _, err := s.attemptRepo.FindExamAttempt(e.ID, userID); err == nil {
			item.Attempted = true
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// GetForTake returns the questions for a scored run. It enforces the window
// and the single-attempt rule before revealing anything; the answer key is
// never included.
func (s *examService) GetForTake(siteID, userID, id uint) (*dto.ExamResponse, error) {
	exam, err := s.findOwned(siteID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if now.Before(exam.ScheduledAt) {
		return nil, ErrWindowNotOpen
	}
	if exam.Finished(now) {
		return nil, ErrWindowClosed
	}
	if _, err := s.attemptRepo.FindExamAttempt(id, userID); err == nil {
		return nil, ErrAlreadyAttempted
	}

	resp := dto.ExamResponse{
		ID:              exam.ID,
		Title:           exam.Title,
		ScheduledAt:     exam.ScheduledAt,
		DurationMinutes: exam.DurationMinutes,
		QuestionCount:   len(exam.Questions),
		Status:          dto.ExamStatusActive,
	}
	copier.Copy(&resp.Questions, &exam.Questions)
	return &resp, nil
}

// GetForPractice serves the unscored replay once the window has closed.
func (s *examService) GetForPractice(siteID, id uint) (*dto.ExamAdminResponse, error) {
	exam, err := s.findOwned(siteID, id)
	if err != nil {
		return nil, err
	}
	if !exam.Finished(s.now()) {
		return nil, ErrExamNotFinished
	}
	return s.adminExamResponse(exam), nil
}

func (s *examService) GetAdmin(siteID, id uint) (*dto.ExamAdminResponse, error) {
	exam, err := s.findOwned(siteID, id)
	if err != nil {
		return nil, err
	}
	return s.adminExamResponse(exam), nil
}

func (s *examService) ReplaceContent(siteID, id uint, req dto.ContentRequest, file []byte) (*dto.ExamAdminResponse, error) {
	if _, err := s.findOwned(siteID, id); err != nil {
		return nil, err
	}
	questions, err := s.content.BuildQuestions(req, file)
	if err != nil {
		return nil, err
	}
	if err := s.examRepo.ReplaceQuestions(id, questions); err != nil {
		log.Error().Err(err).Uint("exam_id", id).Msg("Failed to replace exam questions")
		return nil, err
	}
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	return s.adminExamResponse(exam), nil
}

func (s *examService) UpdateSchedule(siteID, id uint, req dto.ExamUpdateRequest) error {
	if _, err := s.findOwned(siteID, id); err != nil {
		return err
	}
	return s.examRepo.UpdateSchedule(id, &model.Exam{
		Title:           req.Title,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
	})
}

func (s *examService) Delete(siteID, id uint) error {
	if _, err := s.findOwned(siteID, id); err != nil {
		return err
	}
	return s.examRepo.Delete(id)
}

func (s *examService) ExportCSV(siteID, id uint) (string, error) {
	exam, err := s.findOwned(siteID, id)
	if err != nil {
		return "", err
	}
	return ingest.WriteCSV(toParsed(exam.Questions)), nil
}

func (s *examService) findOwned(siteID, id uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if exam.SiteID != siteID {
		return nil, ErrForbidden
	}
	return exam, nil
}

func (s *examService) adminExamResponse(exam *model.Exam) *dto.ExamAdminResponse {
	resp := dto.ExamAdminResponse{
		ID:              exam.ID,
		Title:           exam.Title,
		ScheduledAt:     exam.ScheduledAt,
		DurationMinutes: exam.DurationMinutes,
		QuestionCount:   len(exam.Questions),
		Status:          examStatus(exam, s.now()),
	}
	copier.Copy(&resp.Questions, &exam.Questions)
	return &resp
}

func examStatus(exam *model.Exam, now time.Time) string {
	switch {
	case now.Before(exam.ScheduledAt):
		return dto.ExamStatusUpcoming
	case exam.InWindow(now):
		return dto.ExamStatusActive
	default:
		return dto.ExamStatusFinished
	}
}
