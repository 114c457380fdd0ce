package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllBySiteWithQuestionCount(siteID uint) ([]ExamWithCount, error)
	ReplaceQuestions(examID uint, questions []model.Question) error
	UpdateSchedule(examID uint, exam *model.Exam) error
	Delete(id uint) error
}

type ExamWithCount struct {
	model.Exam
	QuestionCount int
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllBySiteWithQuestionCount(siteID uint) ([]ExamWithCount, error) {
	var results []ExamWithCount
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id AND questions.deleted_at IS NULL) as question_count").
		Where("exams.site_id = ? AND exams.deleted_at IS NULL", siteID).
		Order("exams.scheduled_at ASC").
		Scan(&results).Error
	return results, err
}

// ReplaceQuestions swaps the full question set atomically, same contract as
// the quiz variant.
func (r *examRepository) ReplaceQuestions(examID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", examID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].ExamID = &examID
			questions[i].QuizID = nil
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Exam{}).Where("id = ?", examID).Update("updated_at", tx.NowFunc()).Error
	})
}

func (r *examRepository) UpdateSchedule(examID uint, exam *model.Exam) error {
	return r.db.Model(&model.Exam{}).Where("id = ?", examID).
		Updates(map[string]any{
			"title":            exam.Title,
			"scheduled_at":     exam.ScheduledAt,
			"duration_minutes": exam.DurationMinutes,
		}).Error
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, id).Error
	})
}
