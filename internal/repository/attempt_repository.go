package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	CreateQuizAttempt(attempt *model.QuizAttempt) error
	CreateExamAttempt(attempt *model.ExamAttempt) error
	FindExamAttempt(examID, userID uint) (*model.ExamAttempt, error)
	FindExamAttemptsByExam(examID uint) ([]model.ExamAttempt, error)
	FindExamAttemptsByUser(userID uint) ([]model.ExamAttempt, error)
	FindQuizAttemptsByUser(userID uint) ([]model.QuizAttempt, error)
	FindQuizAttemptsByQuiz(quizID uint) ([]model.QuizAttempt, error)
	CountExamAttemptsBetter(examID uint, attempt *model.ExamAttempt) (int64, error)
	DeleteExamAttempt(examID, id uint) error
	DeleteQuizAttempt(quizID, id uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateQuizAttempt(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

// CreateExamAttempt inserts the single scored row. The (exam_id, user_id)
// unique index makes this the race boundary: under concurrent submissions
// exactly one insert wins and the rest come back as gorm.ErrDuplicatedKey.
func (r *attemptRepository) CreateExamAttempt(attempt *model.ExamAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindExamAttempt(examID, userID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.Where("exam_id = ? AND user_id = ?", examID, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindExamAttemptsByExam(examID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Where("exam_id = ?", examID).
		Order("correct_answers DESC, total_time_seconds ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindExamAttemptsByUser(userID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindQuizAttemptsByUser(userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindQuizAttemptsByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("quiz_id = ?", quizID).Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

// CountExamAttemptsBetter counts peers ranked above the given attempt: more
// correct answers, or the same count finished faster. Rank = count + 1.
func (r *attemptRepository) CountExamAttemptsBetter(examID uint, attempt *model.ExamAttempt) (int64, error) {
	var n int64
	err := r.db.Model(&model.ExamAttempt{}).
		Where("exam_id = ? AND (correct_answers > ? OR (correct_answers = ? AND total_time_seconds < ?))",
			examID, attempt.CorrectAnswers, attempt.CorrectAnswers, attempt.TotalTimeSeconds).
		Count(&n).Error
	return n, err
}

// DeleteExamAttempt removes one attempt, scoped to its exam so an id from a
// different exam cannot be reached. Zero rows affected reads as not found.
func (r *attemptRepository) DeleteExamAttempt(examID, id uint) error {
	res := r.db.Where("id = ? AND exam_id = ?", id, examID).Delete(&model.ExamAttempt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *attemptRepository) DeleteQuizAttempt(quizID, id uint) error {
	res := r.db.Where("id = ? AND quiz_id = ?", id, quizID).Delete(&model.QuizAttempt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
