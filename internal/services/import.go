package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/orderbridge-backend/internal/legacy"
	"github.com/yungbote/orderbridge-backend/internal/memdb"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/repos"
)

// ImportSummary reports one processed upload.
type ImportSummary struct {
	ImportID uuid.UUID `json:"import_id"`
	Records  int       `json:"records"`
	Orders   int       `json:"orders"`
	Users    int       `json:"users"`
}

type ImportService interface {
	// ImportFile decodes a whole legacy order file, extracts aggregates
	// and stores them. Decode failures return wrapped ErrDecodeFailed
	// with nothing stored.
	ImportFile(ctx context.Context, content string) (*ImportSummary, error)
}

type importService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	orderRepo repos.OrderRepo
	mem       *memdb.Store
}

// NewImportService wires both storage collaborators. db may be nil when
// Postgres is unavailable; imports then only reach the in-memory store.
func NewImportService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, orderRepo repos.OrderRepo, mem *memdb.Store) ImportService {
	return &importService{
		db:        db,
		log:       log.With("service", "ImportService"),
		userRepo:  userRepo,
		orderRepo: orderRepo,
		mem:       mem,
	}
}

func (is *importService) ImportFile(ctx context.Context, content string) (*ImportSummary, error) {
	importID := uuid.New()
	log := is.log.With("import_id", importID.String())

	records, err := legacy.Decode(content)
	if err != nil {
		log.Warn("Failed to decode legacy order file", "error", err)
		return nil, err
	}

	orders, users := legacy.Extract(records)
	log.Info("Extracted aggregates from upload", "records", len(records), "orders", len(orders), "users", len(users))

	// One uploaded file is one transaction: either every user, order and
	// product row of the batch becomes visible, or none do.
	if is.db != nil {
		err = is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := is.userRepo.Create(ctx, tx, users); err != nil {
				return fmt.Errorf("inserting users: %w", err)
			}
			if err := is.orderRepo.Create(ctx, tx, orders); err != nil {
				return fmt.Errorf("inserting orders: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Error("Import transaction failed", "error", err)
			return nil, err
		}
	}

	is.mem.Populate(orders, users)

	return &ImportSummary{
		ImportID: importID,
		Records:  len(records),
		Orders:   len(orders),
		Users:    len(users),
	}, nil
}
