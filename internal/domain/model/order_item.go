package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 注文明細。購入時点の価格を必ずスナップショットとして保存する。
// 商品価格が後から変わっても履歴の合計は変わらない。
type OrderItem struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int64  `gorm:"not null" json:"quantity"`

	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_at_purchase"`

	//JOIN取得用
	Product Product `gorm:"foreignKey:ProductID" json:"product"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
