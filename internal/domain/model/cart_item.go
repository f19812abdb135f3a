package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// カートの明細。(user, product) につき1行が不変条件。
// unique indexで同時追加でも行が重複しないようにする。
type CartItem struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:uq_cart_user_product" json:"user_id"`
	ProductID string `gorm:"type:uuid;not null;uniqueIndex:uq_cart_user_product" json:"product_id"`
	Quantity  int64  `gorm:"not null" json:"quantity"`

	//JOIN取得用
	Product Product `gorm:"foreignKey:ProductID" json:"product"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
