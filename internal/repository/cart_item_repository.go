package repository

import (
	"context"

	"shopfast/internal/domain/model"
)

type CartItemRepository interface {
	//ユーザーの明細を商品JOIN付きで全件返す
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)

	// 同一(user, product)は数量加算。ON CONFLICTの1文で行う
	UpsertByUserAndProduct(ctx context.Context, userID string, productID string, addQty int64) error

	UpdateQuantity(ctx context.Context, cartItemID string, qty int64) error
	DeleteByID(ctx context.Context, cartItemID string) error

	//ユーザーの明細を全削除（他ユーザーには触らない）
	DeleteByUserID(ctx context.Context, userID string) error

	IsOwnedByUser(ctx context.Context, cartItemID string, userID string) (bool, error)
}
