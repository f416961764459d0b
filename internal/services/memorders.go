package services

import (
	"context"
	"time"

	"github.com/yungbote/orderbridge-backend/internal/memdb"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

type memOrderService struct {
	log *logger.Logger
	mem *memdb.Store
}

// NewMemOrderService answers reads from the in-memory store. The memory
// engine cannot fail, so both methods only error on lookup misses.
func NewMemOrderService(log *logger.Logger, mem *memdb.Store) OrderReader {
	return &memOrderService{
		log: log.With("service", "MemOrderService"),
		mem: mem,
	}
}

func (ms *memOrderService) FindOrderByID(_ context.Context, orderID int64) (*types.UserOrders, error) {
	return ms.mem.FindOne(orderID)
}

func (ms *memOrderService) FindOrders(_ context.Context, start, end *time.Time) ([]*types.UserOrders, error) {
	return ms.mem.FindMany(start, end), nil
}
