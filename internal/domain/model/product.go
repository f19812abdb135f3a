package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID *string `gorm:"type:uuid;index" json:"category_id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Slug       string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`

	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`

	//トップに出すおすすめ商品フラグ
	Featured bool `gorm:"not null;default:false;index" json:"featured"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
