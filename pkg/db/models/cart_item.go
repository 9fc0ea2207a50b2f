package models

import "time"

// CartItem is one pending line in an owner's cart. OwnerKey is the canonical
// owner scope ("u:<id>" or "s:<token>"); the (owner_key, product_id) pair is
// unique so repeated adds accumulate into a single row. UserID/SessionToken
// carry the raw identity, and the user FK cascades cart cleanup on account
// deletion.
type CartItem struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerKey     string    `gorm:"column:owner_key;not null;uniqueIndex:idx_cart_items_owner_product,priority:1"`
	ProductID    int64     `gorm:"column:product_id;not null;uniqueIndex:idx_cart_items_owner_product,priority:2"`
	UserID       *int64    `gorm:"column:user_id"`
	SessionToken *string   `gorm:"column:session_token"`
	Quantity     int       `gorm:"column:quantity;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
