package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/orderbridge-backend/internal/db"
	"github.com/yungbote/orderbridge-backend/internal/memdb"
	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/repos"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

const validUpload = "0000000070                              Palmer Prosacco00000007530000000003     1836.7420210308\n" +
	"0000000075                                  Bobbie Batz00000007980000000002     1578.5720211116\n" +
	"0000000070                              Palmer Prosacco00000007530000000004      100.2620210308"

func newImportFixture(t *testing.T) (ImportService, *gorm.DB, *memdb.Store) {
	t.Helper()
	gdb, err := db.NewSQLite(":memory:")
	require.NoError(t, err)

	log := logger.NewNop()
	mem := memdb.New()
	svc := NewImportService(gdb, log, repos.NewUserRepo(gdb, log), repos.NewOrderRepo(gdb, log), mem)
	return svc, gdb, mem
}

func TestImportFilePersistsAggregates(t *testing.T) {
	svc, gdb, mem := newImportFixture(t)

	summary, err := svc.ImportFile(context.Background(), validUpload)
	require.NoError(t, err)
	require.NotNil(t, summary)
	require.Equal(t, 3, summary.Records)
	require.Equal(t, 2, summary.Orders)
	require.Equal(t, 2, summary.Users)

	var userCount, orderCount, productCount int64
	require.NoError(t, gdb.Model(&types.User{}).Count(&userCount).Error)
	require.NoError(t, gdb.Model(&types.Order{}).Count(&orderCount).Error)
	require.NoError(t, gdb.Model(&types.OrderProduct{}).Count(&productCount).Error)
	require.EqualValues(t, 2, userCount)
	require.EqualValues(t, 2, orderCount)
	require.EqualValues(t, 3, productCount)

	// repeated order id accumulated into one row
	var order types.Order
	require.NoError(t, gdb.Preload("Products").First(&order, "id = ?", 753).Error)
	require.InDelta(t, 1937.00, order.Total, 1e-9)
	require.Len(t, order.Products, 2)

	// the memory store saw the same batch
	view, err := mem.FindOne(798)
	require.NoError(t, err)
	require.Equal(t, "Bobbie Batz", view.Name)
}

func TestImportFileDecodeFailureStoresNothing(t *testing.T) {
	svc, gdb, mem := newImportFixture(t)

	_, err := svc.ImportFile(context.Background(), validUpload+"\nnot a legacy line")
	require.ErrorIs(t, err, pkgerrors.ErrDecodeFailed)

	var orderCount int64
	require.NoError(t, gdb.Model(&types.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)
	require.Empty(t, mem.FindMany(nil, nil))
}

// A second upload colliding with already-imported primary keys must roll
// back as a unit: rows from the conflicting batch never become visible.
func TestImportFileConflictRollsBackWholeBatch(t *testing.T) {
	svc, gdb, _ := newImportFixture(t)

	_, err := svc.ImportFile(context.Background(), validUpload)
	require.NoError(t, err)

	conflicting := "0000000099                                     New User00000099990000000001       10.0020210308\n" +
		"0000000075                                  Bobbie Batz00000007980000000002     1578.5720211116"
	_, err = svc.ImportFile(context.Background(), conflicting)
	require.Error(t, err)

	var user types.User
	err = gdb.First(&user, "id = ?", 99).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var order types.Order
	err = gdb.First(&order, "id = ?", 9999).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestImportFileWithoutDatabaseStillServesMemory(t *testing.T) {
	log := logger.NewNop()
	mem := memdb.New()
	svc := NewImportService(nil, log, nil, nil, mem)

	summary, err := svc.ImportFile(context.Background(), validUpload)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Orders)

	view, err := mem.FindOne(753)
	require.NoError(t, err)
	require.Equal(t, "Palmer Prosacco", view.Name)
}
