package types

import "time"

type Order struct {
	ID       int64          `gorm:"primaryKey;column:id" json:"order_id"`
	UserID   int64          `gorm:"not null;index;column:user_id" json:"user_id"`
	Total    float64        `gorm:"type:decimal(10,2);not null;column:total" json:"total"`
	Date     time.Time      `gorm:"not null;column:date" json:"date"`
	User     *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Products []OrderProduct `gorm:"foreignKey:OrderID" json:"products"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderProduct is a line item owned by exactly one order. The same
// ProductID may recur across orders; rows carry their own surrogate key.
type OrderProduct struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	ProductID int64   `gorm:"not null;column:product_id" json:"product_id"`
	Value     float64 `gorm:"type:decimal(10,2);not null;column:value" json:"value"`
	OrderID   int64   `gorm:"not null;index;column:order_id" json:"-"`
}

func (OrderProduct) TableName() string {
	return "products"
}
