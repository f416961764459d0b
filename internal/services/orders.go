package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/pkg/ordmap"
	"github.com/yungbote/orderbridge-backend/internal/repos"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

// OrderReader is the read side shared by both backends: look up one order
// with its owning user, or list orders in a date window grouped by user.
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID int64) (*types.UserOrders, error)
	FindOrders(ctx context.Context, start, end *time.Time) ([]*types.UserOrders, error)
}

type orderService struct {
	db        *gorm.DB
	log       *logger.Logger
	orderRepo repos.OrderRepo
}

// NewOrderService answers reads from the relational store.
func NewOrderService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo) OrderReader {
	return &orderService{
		db:        db,
		log:       log.With("service", "OrderService"),
		orderRepo: orderRepo,
	}
}

func (os *orderService) FindOrderByID(ctx context.Context, orderID int64) (*types.UserOrders, error) {
	order, err := os.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	view := &types.UserOrders{
		UserID: order.UserID,
		Orders: []types.OrderDetail{types.DetailFromOrder(order)},
	}
	if order.User != nil {
		view.Name = order.User.Name
	}
	return view, nil
}

func (os *orderService) FindOrders(ctx context.Context, start, end *time.Time) ([]*types.UserOrders, error) {
	orders, err := os.orderRepo.List(ctx, nil, start, end)
	if err != nil {
		return nil, err
	}

	// Rows arrive sorted by user_id then id; grouping through an ordered
	// map keeps that ordering in the response.
	grouped := ordmap.New[int64, *types.UserOrders]()
	for _, order := range orders {
		view, ok := grouped.Get(order.UserID)
		if !ok {
			view = &types.UserOrders{UserID: order.UserID}
			if order.User != nil {
				view.Name = order.User.Name
			}
			grouped.Set(order.UserID, view)
		}
		view.Orders = append(view.Orders, types.DetailFromOrder(order))
	}
	return grouped.Values(), nil
}
