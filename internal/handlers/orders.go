package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/services"
)

const dateLayout = "2006-01-02"

type OrdersHandler struct {
	log           *logger.Logger
	importService services.ImportService
	orders        services.OrderReader
}

// NewOrdersHandler serves one API version; v1 and v2 get their own
// instance wired to the matching read backend.
func NewOrdersHandler(log *logger.Logger, importService services.ImportService, orders services.OrderReader) *OrdersHandler {
	return &OrdersHandler{
		log:           log.With("handler", "OrdersHandler"),
		importService: importService,
		orders:        orders,
	}
}

// POST /api/v{1,2}/orders
// Import legacy orders from a multipart "file" field.
func (h *OrdersHandler) ImportLegacyOrders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_file", fmt.Errorf("missing file field: %w", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_file", err)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_file", err)
		return
	}

	summary, err := h.importService.ImportFile(c.Request.Context(), string(content))
	if err != nil {
		if errors.Is(err, pkgerrors.ErrDecodeFailed) {
			RespondError(c, http.StatusBadRequest, "decode_failed", errors.New("failed to parse orders, invalid entry found"))
			return
		}
		h.log.Error("Import failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "import_failed", err)
		return
	}
	RespondCreated(c, summary)
}

// GET /api/v{1,2}/orders/:id
func (h *OrdersHandler) FindOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("order id must be numeric"))
		return
	}

	view, err := h.orders.FindOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("order with id %d not found", id))
			return
		}
		h.log.Error("Order lookup failed", "order_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	RespondOK(c, view)
}

// GET /api/v{1,2}/orders?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Range validation lives here at the boundary; the engines assume a
// well-formed window.
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	if start != nil && end != nil && !end.After(*start) {
		RespondError(c, http.StatusBadRequest, "invalid_range", errors.New("end_date must be greater than start_date"))
		return
	}

	views, err := h.orders.FindOrders(c.Request.Context(), start, end)
	if err != nil {
		h.log.Error("Order listing failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, views)
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%s must be formatted as %s", name, dateLayout)
	}
	return &d, nil
}
