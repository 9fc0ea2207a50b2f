package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem snapshots a cart line at checkout. PriceAtPurchase is decoupled
// from the live product price so catalog edits never rewrite history.
type OrderItem struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"column:order_id;not null"`
	ProductID       int64           `gorm:"column:product_id;not null"`
	Quantity        int             `gorm:"column:quantity;not null"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(10,2);not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
