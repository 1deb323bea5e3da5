package handlers

import (
	"context"
	"time"

	"github.com/fasthttp/router"
	"github.com/nimasrn/bank-records/internal/model"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
	"github.com/shopspring/decimal"
)

type TransactionService interface {
	Save(ctx context.Context, req model.TransactionSaveRequest) (*model.Transaction, error)
	HardDelete(ctx context.Context, id int64) (*model.Transaction, error)
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	FindAll(ctx context.Context, req model.PageRequest) (model.PagedModel[*model.Transaction], error)
	FindAllByCustomer(ctx context.Context, customerID int64, req model.PageRequest) (model.PagedModel[*model.Transaction], error)
	FindAllByCustomerAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.Transaction], error)
}

type TransactionHandler struct {
	svc TransactionService
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func RegisterTransactionRoutes(e *router.Group, h *TransactionHandler) {
	e.GET("/transactions", h.ListTransactions)
	e.GET("/transactions/{id}", h.GetTransaction)
	e.GET("/customers/{id}/transactions", h.ListTransactionsOfCustomer)
	e.POST("/transactions", h.SaveTransaction)
	e.DELETE("/transactions/{id}", h.DeleteTransaction)
}

type saveTransactionRequest struct {
	ID         int64            `json:"id"`
	CustomerID *int64           `json:"customer_id"`
	Amount     *decimal.Decimal `json:"amount"`
}

func (h *TransactionHandler) SaveTransaction(ctx *xhttp.RequestCtx) {
	var req saveTransactionRequest
	if err := readJSON(ctx, &req); err != nil {
		writeJSON(ctx, xhttp.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	txn, err := h.svc.Save(ctx, model.TransactionSaveRequest{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	status := xhttp.StatusOK
	if req.ID == 0 {
		status = xhttp.StatusCreated
	}
	writeJSON(ctx, status, txn)
}

func (h *TransactionHandler) GetTransaction(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	txn, err := h.svc.FindByID(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, txn)
}

func (h *TransactionHandler) ListTransactions(ctx *xhttp.RequestCtx) {
	req, err := parsePageRequest(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	page, err := h.svc.FindAll(ctx, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, page)
}

// ListTransactionsOfCustomer lists a customer's transactions. When both
// from and to are present the listing narrows to that window.
func (h *TransactionHandler) ListTransactionsOfCustomer(ctx *xhttp.RequestCtx) {
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

func (h *TransactionHandler) DeleteTransaction(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	txn, err := h.svc.HardDelete(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, txn)
}
