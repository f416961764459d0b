package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*types.Order) error
	GetByID(ctx context.Context, tx *gorm.DB, orderID int64) (*types.Order, error)
	// List returns orders with user and products attached, optionally
	// bounded by date (inclusive on both ends), sorted by user_id then id.
	List(ctx context.Context, tx *gorm.DB, start, end *time.Time) ([]*types.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if len(orders) == 0 {
		return nil
	}
	// Products ride along through the association; User rows are inserted
	// separately by UserRepo, so the nested pointer is omitted here.
	return transaction.WithContext(ctx).Omit("User").Create(&orders).Error
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, orderID int64) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Order
	err := transaction.WithContext(ctx).
		Preload("Products").
		Preload("User").
		First(&result, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (or *orderRepo) List(ctx context.Context, tx *gorm.DB, start, end *time.Time) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	query := transaction.WithContext(ctx).
		Preload("Products").
		Preload("User").
		Order("user_id, id")
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var results []*types.Order
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
