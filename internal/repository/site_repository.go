package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type SiteRepository interface {
	Create(site *model.Site) error
	FindByID(id uint) (*model.Site, error)
	FindByCode(code string) (*model.Site, error)
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(site *model.Site) error {
	return r.db.Create(site).Error
}

func (r *siteRepository) FindByID(id uint) (*model.Site, error) {
	var site model.Site
	if err := r.db.First(&site, id).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) FindByCode(code string) (*model.Site, error) {
	var site model.Site
	if err := r.db.Where("code = ?", code).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}
