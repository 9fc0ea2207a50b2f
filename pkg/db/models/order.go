package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/enums"
)

// Order is an immutable checkout result. TotalAmount always equals the sum of
// its items' price*quantity.
type Order struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerKey     string            `gorm:"column:owner_key;not null;index"`
	UserID       *int64            `gorm:"column:user_id"`
	SessionToken *string           `gorm:"column:session_token"`
	TotalAmount  decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User  *User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
