package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/orderbridge-backend/internal/db"
	"github.com/yungbote/orderbridge-backend/internal/memdb"
	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/repos"
)

// Three users, four orders. User 49 appears after 14 and 70 in the file
// but sorts between them by id.
const queryUpload = "0000000070                              Palmer Prosacco00000007530000000003     1836.7420210308\n" +
	"0000000014                                 Clelia Hills00000001460000000001      673.4920211125\n" +
	"0000000070                              Palmer Prosacco00000008010000000002       50.0020210601\n" +
	"0000000049                               Ken Wintheiser00000005230000000003      586.7420210903"

func newOrderFixture(t *testing.T) (OrderReader, OrderReader) {
	t.Helper()
	gdb, err := db.NewSQLite(":memory:")
	require.NoError(t, err)

	log := logger.NewNop()
	mem := memdb.New()
	orderRepo := repos.NewOrderRepo(gdb, log)
	importSvc := NewImportService(gdb, log, repos.NewUserRepo(gdb, log), orderRepo, mem)
	_, err = importSvc.ImportFile(context.Background(), queryUpload)
	require.NoError(t, err)

	return NewOrderService(gdb, log, orderRepo), NewMemOrderService(log, mem)
}

func TestFindOrderByID(t *testing.T) {
	sqlReader, memReader := newOrderFixture(t)

	for name, reader := range map[string]OrderReader{"sql": sqlReader, "mem": memReader} {
		t.Run(name, func(t *testing.T) {
			view, err := reader.FindOrderByID(context.Background(), 753)
			require.NoError(t, err)
			require.Equal(t, int64(70), view.UserID)
			require.Equal(t, "Palmer Prosacco", view.Name)
			require.Len(t, view.Orders, 1)
			require.Equal(t, int64(753), view.Orders[0].OrderID)
			require.Len(t, view.Orders[0].Products, 1)
		})
	}
}

func TestFindOrderByIDNotFound(t *testing.T) {
	sqlReader, memReader := newOrderFixture(t)

	for name, reader := range map[string]OrderReader{"sql": sqlReader, "mem": memReader} {
		t.Run(name, func(t *testing.T) {
			_, err := reader.FindOrderByID(context.Background(), 424242)
			require.ErrorIs(t, err, pkgerrors.ErrNotFound)
		})
	}
}

func TestFindOrdersNoRange(t *testing.T) {
	sqlReader, memReader := newOrderFixture(t)
	ctx := context.Background()

	// relational reads sort by user_id then order id
	views, err := sqlReader.FindOrders(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.Equal(t, int64(14), views[0].UserID)
	require.Equal(t, int64(49), views[1].UserID)
	require.Equal(t, int64(70), views[2].UserID)
	require.Len(t, views[2].Orders, 2)
	require.Equal(t, int64(753), views[2].Orders[0].OrderID)
	require.Equal(t, int64(801), views[2].Orders[1].OrderID)

	// memory reads keep first-seen order from the file
	views, err = memReader.FindOrders(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.Equal(t, int64(70), views[0].UserID)
	require.Equal(t, int64(14), views[1].UserID)
	require.Equal(t, int64(49), views[2].UserID)
}

func TestFindOrdersRange(t *testing.T) {
	sqlReader, memReader := newOrderFixture(t)
	ctx := context.Background()
	start := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2021, time.September, 30, 0, 0, 0, 0, time.Local)

	for name, reader := range map[string]OrderReader{"sql": sqlReader, "mem": memReader} {
		t.Run(name, func(t *testing.T) {
			views, err := reader.FindOrders(ctx, &start, &end)
			require.NoError(t, err)
			require.Len(t, views, 2)
			total := 0
			for _, v := range views {
				total += len(v.Orders)
			}
			// order 801 sits exactly on the start bound and must be included
			require.Equal(t, 2, total)
		})
	}
}
