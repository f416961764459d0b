package legacy

import (
	"github.com/yungbote/orderbridge-backend/internal/pkg/ordmap"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

// Extract folds flat legacy records into normalized Order and User
// aggregates in a single pass. Output slices keep first-seen order.
//
// The legacy system's merge rules are asymmetric and preserved verbatim:
// a user's name is overwritten by every later record (last write wins),
// while an order's user_id and date are fixed by its first record even if
// later records for the same order disagree.
func Extract(records []types.LegacyRecord) ([]*types.Order, []*types.User) {
	orders := ordmap.New[int64, *types.Order]()
	users := ordmap.New[int64, *types.User]()

	for _, rec := range records {
		if u, ok := users.Get(rec.UserID); ok {
			u.Name = rec.UserName
		} else {
			users.Set(rec.UserID, &types.User{ID: rec.UserID, Name: rec.UserName})
		}

		product := types.OrderProduct{
			ProductID: rec.ProductID,
			Value:     rec.Value,
			OrderID:   rec.OrderID,
		}
		if o, ok := orders.Get(rec.OrderID); ok {
			o.Total += rec.Value
			o.Products = append(o.Products, product)
			continue
		}
		orders.Set(rec.OrderID, &types.Order{
			ID:       rec.OrderID,
			UserID:   rec.UserID,
			Total:    rec.Value,
			Date:     rec.Date,
			Products: []types.OrderProduct{product},
		})
	}

	return orders.Values(), users.Values()
}
