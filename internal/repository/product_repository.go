package repository

import (
	"context"
	"errors"

	"shopfast/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品一覧の絞り込み条件。
// CategoryIDが空なら絞り込まない。Featuredはnilなら絞り込まない。
type ProductFilter struct {
	CategoryID string
	Featured   *bool

	//商品名の部分一致（大文字小文字を区別しない）
	Search string
}

// 商品の取得だけを約束。
type ProductRepository interface {
	// 新着順（created_at desc）。ページングなしで全件返す
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
}
