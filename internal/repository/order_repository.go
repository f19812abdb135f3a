package repository

import (
	"context"

	"shopfast/internal/domain/model"
)

type OrderRepository interface {
	//ユーザーの注文を新しい順に、明細と商品のJOIN付きで返す
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)

	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Create(ctx context.Context, order model.Order) (string, error)
}
