package handlers

import (
	"context"
	"time"

	"github.com/fasthttp/router"
	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
)

type CustomerLogService interface {
	FindByID(ctx context.Context, id int64) (*model.CustomerLog, error)
	FindAllByCustomer(ctx context.Context, customerID int64, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error)
	FindAllByCreatedBetween(ctx context.Context, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error)
	FindAllByCustomerAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error)
}

type CustomerLogHandler struct {
	svc CustomerLogService
}

func NewCustomerLogHandler(svc CustomerLogService) *CustomerLogHandler {
	return &CustomerLogHandler{svc: svc}
}

func RegisterCustomerLogRoutes(e *router.Group, h *CustomerLogHandler) {
	e.GET("/customer-logs", h.ListLogs)
	e.GET("/customer-logs/{id}", h.GetLog)
	e.GET("/customers/{id}/logs", h.ListLogsOfCustomer)
}

func (h *CustomerLogHandler) GetLog(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	entry, err := h.svc.FindByID(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, entry)
}

// ListLogs lists audit entries in a created window. Both from and to
// are required; the trail as a whole is unbounded.
func (h *CustomerLogHandler) ListLogs(ctx *xhttp.RequestCtx) {
	if query(ctx, "from") == "" || query(ctx, "to") == "" {
		writeError(ctx, apperr.InvalidArgument("from and to are required"))
		return
	}
	from, to, err := queryTimeRange(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	req, err := parsePageRequest(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	page, err := h.svc.FindAllByCreatedBetween(ctx, from, to, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, page)
}

func (h *CustomerLogHandler) ListLogsOfCustomer(ctx *xhttp.RequestCtx) {
	customerID, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	req, err := parsePageRequest(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if query(ctx, "from") != "" || query(ctx, "to") != "" {
		from, to, err := queryTimeRange(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}
		page, err := h.svc.FindAllByCustomerAndCreatedBetween(ctx, customerID, from, to, req)
		if err != nil {
			writeError(ctx, err)
			return
		}
		writeJSON(ctx, xhttp.StatusOK, page)
		return
	}
	page, err := h.svc.FindAllByCustomer(ctx, customerID, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, page)
}
