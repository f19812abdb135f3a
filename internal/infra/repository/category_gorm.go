package repository

import (
	"context"
	"errors"

	"shopfast/internal/domain/model"
	repo "shopfast/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// 全カテゴリを名前順で取得
func (r *CategoryGormRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return []model.Category{}, err
	}

	return categories, nil
}

// slugからIDを引く
func (r *CategoryGormRepository) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	var c model.Category

	err := r.db.WithContext(ctx).
		Select("id").
		Where("slug = ?", slug).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return c.ID, nil
}
