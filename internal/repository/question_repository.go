package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
	UpdateHint(id uint, hint string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) UpdateHint(id uint, hint string) error {
	return r.db.Model(&model.Question{}).Where("id = ?", id).Update("hint", hint).Error
}
