package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type AdminRequestRepository interface {
	Create(req *model.AdminRequest) error
	FindByID(id uint) (*model.AdminRequest, error)
	FindByStatus(status string) ([]model.AdminRequest, error)
	Update(req *model.AdminRequest) error
}

type adminRequestRepository struct {
	db *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) AdminRequestRepository {
	return &adminRequestRepository{db: db}
}

func (r *adminRequestRepository) Create(req *model.AdminRequest) error {
	return r.db.Create(req).Error
}

func (r *adminRequestRepository) FindByID(id uint) (*model.AdminRequest, error) {
	var req model.AdminRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *adminRequestRepository) FindByStatus(status string) ([]model.AdminRequest, error) {
	var reqs []model.AdminRequest
	if err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *adminRequestRepository) Update(req *model.AdminRequest) error {
	return r.db.Save(req).Error
}
