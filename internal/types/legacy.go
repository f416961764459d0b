package types

import "time"

// LegacyRecord is one decoded fixed-width line from a legacy order file:
// a single product line-item together with its order and owning user.
// Records only live for the duration of a decode/extract pass and are
// never persisted.
type LegacyRecord struct {
	UserID    int64
	UserName  string
	OrderID   int64
	ProductID int64
	Value     float64
	Date      time.Time
}
