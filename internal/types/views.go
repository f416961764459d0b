package types

import "time"

// UserOrders is the read-side grouping of one user's orders. It is
// assembled per query and never stored.
type UserOrders struct {
	UserID int64         `json:"user_id"`
	Name   string        `json:"name"`
	Orders []OrderDetail `json:"orders"`
}

// OrderDetail is an order as presented inside a UserOrders view, without
// the redundant user_id.
type OrderDetail struct {
	OrderID  int64          `json:"order_id"`
	Total    float64        `json:"total"`
	Date     time.Time      `json:"date"`
	Products []OrderProduct `json:"products"`
}

// DetailFromOrder strips the owning user off a stored order.
func DetailFromOrder(o *Order) OrderDetail {
	return OrderDetail{
		OrderID:  o.ID,
		Total:    o.Total,
		Date:     o.Date,
		Products: o.Products,
	}
}
