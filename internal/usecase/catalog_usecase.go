package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopfast/internal/domain/model"
	repo "shopfast/internal/repository"
)

// CatalogUsecase はカテゴリ・商品一覧の読み取り専用ロジック。
type CatalogUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

func NewCatalogUsecase(
	categoryRepo repo.CategoryRepository,
	productRepo repo.ProductRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// GET /products の入力
type ListProductsInput struct {
	CategorySlug string
	Featured     *bool
	Search       string
}

// 全カテゴリを名前順で返す。絞り込み条件には影響されない。
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

// 商品一覧。新着順・ページングなし。
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	f := repo.ProductFilter{
		Featured: in.Featured,
		Search:   strings.TrimSpace(in.Search),
	}

	if len(f.Search) > 100 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}

	//slug→カテゴリID解決してから等価条件にする
	if slug := strings.TrimSpace(in.CategorySlug); slug != "" {
		id, err := u.categoryRepo.FindIDBySlug(ctx, slug)
		if err == repo.ErrNotFound {
			// slugに一致するカテゴリが無い場合はカテゴリ条件を黙って外す
			// （空一覧ではなく未絞り込みの一覧を返す。元の挙動）
		} else if err != nil {
			return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		} else {
			f.CategoryID = id
		}
	}

	products, err := u.productRepo.List(ctx, f)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return products, nil
}

// slugで商品詳細を1件返す。
func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
