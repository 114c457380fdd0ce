package service

import (
	"errors"
	"math"
	"sort"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/repository"
	"gorm.io/gorm"
)

// recentResultsShown bounds the per-student history embedded in the admin
// overview; the full history stays behind the per-assessment endpoints.
const recentResultsShown = 5

type StatsService interface {
	ExamResults(siteID, examID uint) ([]dto.ExamResultResponse, error)
	MyExamResult(siteID, userID, examID uint) (*dto.ExamResultResponse, error)
	QuizHistory(userID uint) ([]dto.AttemptResponse, error)
	QuizResults(siteID, quizID uint) ([]dto.AttemptResponse, error)
	StudentSummaries(siteID uint) ([]dto.StudentSummaryResponse, error)
}

type statsService struct {
	examRepo    repository.ExamRepository
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	userRepo    repository.UserRepository
}

func NewStatsService(examRepo repository.ExamRepository, quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{examRepo: examRepo, quizRepo: quizRepo, attemptRepo: attemptRepo, userRepo: userRepo}
}

// ExamResults returns the leaderboard ordered by score, ties broken by
// elapsed time. Identical results share a rank and the next distinct
// result skips past them.
func (s *statsService) ExamResults(siteID, examID uint) ([]dto.ExamResultResponse, error) {
	if err := s.checkExamSite(siteID, examID); err != nil {
		return nil, err
	}
	attempts, err := s.attemptRepo.FindExamAttemptsByExam(examID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ExamResultResponse, 0, len(attempts))
	rank := 0
	prevCorrect, prevSeconds := -1, -1
	for i, a := range attempts {
		if a.CorrectAnswers != prevCorrect || a.TotalTimeSeconds != prevSeconds {
			rank = i + 1
			prevCorrect, prevSeconds = a.CorrectAnswers, a.TotalTimeSeconds
		}
		results = append(results, dto.ExamResultResponse{
			AttemptResponse: *examAttemptResponse(&a),
			Rank:            rank,
		})
	}
	return results, nil
}

func (s *statsService) MyExamResult(siteID, userID, examID uint) (*dto.ExamResultResponse, error) {
	if err := s.checkExamSite(siteID, examID); err != nil {
		return nil, err
	}
	attempt, err := s.attemptRepo.FindExamAttempt(examID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	better, err := s.attemptRepo.CountExamAttemptsBetter(examID, attempt)
	if err != nil {
		return nil, err
	}
	return &dto.ExamResultResponse{
		AttemptResponse: *examAttemptResponse(attempt),
		Rank:            int(better) + 1,
	}, nil
}

func (s *statsService) QuizHistory(userID uint) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindQuizAttemptsByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, *quizAttemptResponse(&a))
	}
	return resp, nil
}

func (s *statsService) QuizResults(siteID, quizID uint) ([]dto.AttemptResponse, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if quiz.SiteID != siteID {
		return nil, ErrForbidden
	}
	attempts, err := s.attemptRepo.FindQuizAttemptsByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, *quizAttemptResponse(&a))
	}
	return resp, nil
}

// StudentSummaries aggregates every participant of a site: attempt counts
// across quizzes and exams, the mean percentage, and the latest results.
func (s *statsService) StudentSummaries(siteID uint) ([]dto.StudentSummaryResponse, error) {
	users, err := s.userRepo.FindAllBySite(siteID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentSummaryResponse, 0, len(users))
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		quizAttempts, err := s.attemptRepo.FindQuizAttemptsByUser(u.ID)
		if err != nil {
			return nil, err
		}
		examAttempts, err := s.attemptRepo.FindExamAttemptsByUser(u.ID)
		if err != nil {
			return nil, err
		}

		results := make([]dto.AttemptResponse, 0, len(quizAttempts)+len(examAttempts))
		for i := range quizAttempts {
			results = append(results, *quizAttemptResponse(&quizAttempts[i]))
		}
		for i := range examAttempts {
			results = append(results, *examAttemptResponse(&examAttempts[i]))
		}
		sort.Slice(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})

		sum := 0
		for _, r := range results {
			sum += r.Percentage
		}
		avg := 0
		if len(results) > 0 {
			avg = int(math.Round(float64(sum) / float64(len(results))))
		}
		recent := results
		if len(recent) > recentResultsShown {
			recent = recent[:recentResultsShown]
		}

		summaries = append(summaries, dto.StudentSummaryResponse{
			UserID:        u.ID,
			StudentName:   u.Name,
			AttemptCount:  len(results),
			AverageScore:  avg,
			RecentResults: recent,
		})
	}
	return summaries, nil
}

func (s *statsService) checkExamSite(siteID, examID uint) error {
	exam, err := s.examRepo.FindByID(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if exam.SiteID != siteID {
		return ErrForbidden
	}
	return nil
}
