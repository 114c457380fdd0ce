package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllBySiteWithQuestionCount(siteID uint) ([]QuizWithCount, error)
	ReplaceQuestions(quizID uint, questions []model.Question) error
	UpdateTitle(quizID uint, title string) error
	Delete(id uint) error
}

type QuizWithCount struct {
	model.Quiz
	QuestionCount int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the associated questions in the same transaction
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllBySiteWithQuestionCount(siteID uint) ([]QuizWithCount, error) {
	var results []QuizWithCount
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.site_id = ? AND quizzes.deleted_at IS NULL", siteID).
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

// ReplaceQuestions swaps the full question set in one transaction: readers
// see the old set or the new set, never a partially deleted one.
func (r *quizRepository) ReplaceQuestions(quizID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].QuizID = &quizID
			questions[i].ExamID = nil
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Quiz{}).Where("id = ?", quizID).Update("updated_at", tx.NowFunc()).Error
	})
}

func (r *quizRepository) UpdateTitle(quizID uint, title string) error {
	return r.db.Model(&model.Quiz{}).Where("id = ?", quizID).Update("title", title).Error
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
