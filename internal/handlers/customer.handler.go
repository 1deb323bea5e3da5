package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/bank-records/internal/model"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
	"github.com/shopspring/decimal"
)

type CustomerService interface {
	Save(ctx context.Context, req model.CustomerSaveRequest) (*model.Customer, error)
	HardDelete(ctx context.Context, id int64) (*model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context, req model.PageRequest) (model.PagedModel[*model.Customer], error)
	FindAllByFullName(ctx context.Context, fullName string, req model.PageRequest) (model.PagedModel[*model.Customer], error)
	FindAllByBalanceBetween(ctx context.Context, min, max decimal.Decimal, req model.PageRequest) (model.PagedModel[*model.Customer], error)
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func RegisterCustomerRoutes(e *router.Group, h *CustomerHandler) {
	e.GET("/customers", h.ListCustomers)
	e.GET("/customers/{id}", h.GetCustomer)
	e.GET("/customers/balance-between", h.ListCustomersByBalance)
	e.GET("/customers/full-name/{fullName}", h.ListCustomersByFullName)
	e.POST("/customers", h.SaveCustomer)
	e.DELETE("/customers/{id}", h.DeleteCustomer)
}

type saveCustomerRequest struct {
	ID          int64            `json:"id"`
	FullName    string           `json:"full_name"`
	PhoneNumber string           `json:"phone_number"`
	Balance     *decimal.Decimal `json:"balance"`
}

func (h *CustomerHandler) SaveCustomer(ctx *xhttp.RequestCtx) {
	var req saveCustomerRequest
	if err := readJSON(ctx, &req); err != nil {
		writeJSON(ctx, xhttp.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	customer, err := h.svc.Save(ctx, model.CustomerSaveRequest{
		ID:          req.ID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Balance:     req.Balance,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	status := xhttp.StatusOK
	if req.ID == 0 {
		status = xhttp.StatusCreated
	}
	writeJSON(ctx, status, customer)
}

func (h *CustomerHandler) GetCustomer(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	customer, err := h.svc.FindByID(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(ctx *xhttp.RequestCtx) {
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

func (h *CustomerHandler) ListCustomersByFullName(ctx *xhttp.RequestCtx) {
	fullName, err := paramString(ctx, "fullName")
	if err != nil {
		writeError(ctx, err)
		return
	}
	req, err := parsePageRequest(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	page, err := h.svc.FindAllByFullName(ctx, fullName, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, page)
}

func (h *CustomerHandler) ListCustomersByBalance(ctx *xhttp.RequestCtx) {
	min, err := queryDecimal(ctx, "min")
	if err != nil {
		writeError(ctx, err)
		return
	}
	max, err := queryDecimal(ctx, "max")
	if err != nil {
		writeError(ctx, err)
		return
	}
	req, err := parsePageRequest(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	page, err := h.svc.FindAllByBalanceBetween(ctx, min, max, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, page)
}

// DeleteCustomer removes the customer and responds with the last state
// the row had.
func (h *CustomerHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, err)
		return
	}
	customer, err := h.svc.HardDelete(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, customer)
}
