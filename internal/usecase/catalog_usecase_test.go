package usecase_test

import (
	"context"
	"testing"

	"shopfast/internal/domain/model"
	repo "shopfast/internal/repository"
	"shopfast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CatCategoryRepoMock struct{ mock.Mock }

func (m *CatCategoryRepoMock) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CatCategoryRepoMock) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	args := m.Called(ctx, slug)
	return args.String(0), args.Error(1)
}

type CatProductRepoMock struct{ mock.Mock }

func (m *CatProductRepoMock) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

// Test: カテゴリslugはIDに解決して等価条件にする
func TestListProductsResolvesCategorySlug(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(CatCategoryRepoMock)
	productRepo := new(CatProductRepoMock)

	categoryRepo.On("FindIDBySlug", ctx, "electronics").Return("cat-1", nil)

	featured := true
	expected := repo.ProductFilter{CategoryID: "cat-1", Featured: &featured, Search: "phone"}
	productRepo.On("List", ctx, expected).Return([]model.Product{{ID: "p-1"}}, nil)

	uc := usecase.NewCatalogUsecase(categoryRepo, productRepo)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{
		CategorySlug: "electronics",
		Featured:     &featured,
		Search:       "  phone ", //前後の空白は落とす
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

// Test: 一致しないslugはカテゴリ条件を黙って外す（空一覧にしない）
func TestListProductsUnmatchedSlugFallsBackToUnfiltered(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(CatCategoryRepoMock)
	productRepo := new(CatProductRepoMock)

	categoryRepo.On("FindIDBySlug", ctx, "no-such-category").Return("", repo.ErrNotFound)

	//CategoryIDが空のまま渡ること
	expected := repo.ProductFilter{CategoryID: "", Featured: nil, Search: ""}
	all := []model.Product{{ID: "p-1"}, {ID: "p-2"}, {ID: "p-3"}}
	productRepo.On("List", ctx, expected).Return(all, nil)

	uc := usecase.NewCatalogUsecase(categoryRepo, productRepo)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{CategorySlug: "no-such-category"})

	assert.NoError(t, err)
	assert.Equal(t, all, out)
	productRepo.AssertExpectations(t)
}

// Test: slug解決のDBエラーはフォールバックせずエラーにする
func TestListProductsSlugLookupErrorFails(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(CatCategoryRepoMock)
	productRepo := new(CatProductRepoMock)

	categoryRepo.On("FindIDBySlug", ctx, "electronics").Return("", assert.AnError)

	uc := usecase.NewCatalogUsecase(categoryRepo, productRepo)

	_, err := uc.ListProducts(ctx, usecase.ListProductsInput{CategorySlug: "electronics"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
	productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

// Test: カテゴリ一覧は絞り込みと無関係にrepoの順序のまま返す
func TestListCategories(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(CatCategoryRepoMock)
	productRepo := new(CatProductRepoMock)

	categories := []model.Category{
		{ID: "c-1", Name: "Books & Media", Slug: "books-media"},
		{ID: "c-2", Name: "Electronics", Slug: "electronics"},
	}
	categoryRepo.On("ListAll", ctx).Return(categories, nil)

	uc := usecase.NewCatalogUsecase(categoryRepo, productRepo)

	out, err := uc.ListCategories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, categories, out)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(CatCategoryRepoMock)
	productRepo := new(CatProductRepoMock)

	productRepo.On("FindBySlug", ctx, "gone").Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCatalogUsecase(categoryRepo, productRepo)

	_, err := uc.GetProductBySlug(ctx, "gone")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
