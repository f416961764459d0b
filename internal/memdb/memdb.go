// Package memdb is an insertion-ordered in-memory order store. It backs
// the v1 API the same way the relational store backs v2: writes happen
// once per import, reads group orders by user at query time.
package memdb

import (
	"sync"
	"time"

	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/pkg/ordmap"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

type Store struct {
	mu     sync.RWMutex
	orders *ordmap.Map[int64, *types.Order]
	users  *ordmap.Map[int64, *types.User]
}

func New() *Store {
	return &Store{
		orders: ordmap.New[int64, *types.Order](),
		users:  ordmap.New[int64, *types.User](),
	}
}

// Populate inserts extracted aggregates keyed by their legacy ids. Keys
// seen in an earlier import are overwritten in place and keep their
// original position.
func (s *Store) Populate(orders []*types.Order, users []*types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		s.orders.Set(o.ID, o)
	}
	for _, u := range users {
		s.users.Set(u.ID, u)
	}
}

// FindOne returns the order joined with its owning user, as a view
// holding exactly that one order.
func (s *Store) FindOne(orderID int64) (*types.UserOrders, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders.Get(orderID)
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return &types.UserOrders{
		UserID: order.UserID,
		Name:   s.userName(order.UserID),
		Orders: []types.OrderDetail{types.DetailFromOrder(order)},
	}, nil
}

// FindMany returns all orders whose date falls inside the range
// (inclusive on both bounds; nil means unbounded), grouped by user. Users
// and each user's orders come back in first-seen insertion order.
func (s *Store) FindMany(start, end *time.Time) []*types.UserOrders {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := ordmap.New[int64, *types.UserOrders]()
	for _, order := range s.orders.Values() {
		if start != nil && order.Date.Before(*start) {
			continue
		}
		if end != nil && order.Date.After(*end) {
			continue
		}
		view, ok := grouped.Get(order.UserID)
		if !ok {
			view = &types.UserOrders{UserID: order.UserID, Name: s.userName(order.UserID)}
			grouped.Set(order.UserID, view)
		}
		view.Orders = append(view.Orders, types.DetailFromOrder(order))
	}
	return grouped.Values()
}

func (s *Store) userName(userID int64) string {
	if u, ok := s.users.Get(userID); ok {
		return u.Name
	}
	return ""
}
