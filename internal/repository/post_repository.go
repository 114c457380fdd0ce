package repository

import (
	"github.com/arefinkhan/examine/internal/model"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	FindAllBySite(siteID uint) ([]model.Post, error)
	FindBySite(siteID, id uint) (*model.Post, error)
	Update(siteID, id uint, title, content string) error
	Delete(siteID, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindAllBySite(siteID uint) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("site_id = ?", siteID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindBySite(siteID, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ? AND site_id = ?", id, siteID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update and Delete scope by site in the statement itself; zero rows
// affected reads as not found, so a foreign site's post id is unreachable.
func (r *postRepository) Update(siteID, id uint, title, content string) error {
	res := r.db.Model(&model.Post{}).
		Where("id = ? AND site_id = ?", id, siteID).
		Updates(map[string]interface{}{"title": title, "content": content})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Delete(siteID, id uint) error {
	res := r.db.Where("id = ? AND site_id = ?", id, siteID).Delete(&model.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
