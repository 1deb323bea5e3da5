package services

import (
	"context"
	"time"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/pkg/errors"
)

type CustomerLogRepository interface {
	FindByID(ctx context.Context, id int64) (*model.CustomerLog, error)
	FindAllByCustomerID(ctx context.Context, customerID int64, req model.PageRequest) ([]*model.CustomerLog, int64, error)
	FindAllByCreatedBetween(ctx context.Context, from, to time.Time, req model.PageRequest) ([]*model.CustomerLog, int64, error)
	FindAllByCustomerIDAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) ([]*model.CustomerLog, int64, error)
}

// CustomerLogService exposes the audit trail read-only. Log entries are
// written by CustomerService and never modified afterwards.
type CustomerLogService struct {
	logs CustomerLogRepository
}

func NewCustomerLogService(logs CustomerLogRepository) *CustomerLogService {
	return &CustomerLogService{logs: logs}
}

func (s *CustomerLogService) FindByID(ctx context.Context, id int64) (*model.CustomerLog, error) {
	entry, err := s.logs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerLogNotFound) {
			return nil, apperr.NotFound("customerLogId:%d", id)
		}
		return nil, storageErr(err, "loading customer log %d", id)
	}
	return entry, nil
}

func (s *CustomerLogService) FindAllByCustomer(ctx context.Context, customerID int64, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error) {
	entries, total, err := s.logs.FindAllByCustomerID(ctx, customerID, req)
	if err != nil {
		return model.PagedModel[*model.CustomerLog]{}, storageErr(err, "listing logs of customer %d", customerID)
	}
	if len(entries) == 0 {
		return model.PagedModel[*model.CustomerLog]{}, apperr.NotFound("No log of customer with id: %d", customerID)
	}
	return model.NewPagedModel(entries, total, req.Size), nil
}

func (s *CustomerLogService) FindAllByCreatedBetween(ctx context.Context, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error) {
	entries, total, err := s.logs.FindAllByCreatedBetween(ctx, from, to, req)
	if err != nil {
		return model.PagedModel[*model.CustomerLog]{}, storageErr(err, "listing logs between %s and %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	if len(entries) == 0 {
		return model.PagedModel[*model.CustomerLog]{}, apperr.NotFound("No log between %s and %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return model.NewPagedModel(entries, total, req.Size), nil
}

func (s *CustomerLogService) FindAllByCustomerAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.CustomerLog], error) {
	entries, total, err := s.logs.FindAllByCustomerIDAndCreatedBetween(ctx, customerID, from, to, req)
	if err != nil {
		return model.PagedModel[*model.CustomerLog]{}, storageErr(err, "listing logs of customer %d", customerID)
	}
	if len(entries) == 0 {
		return model.PagedModel[*model.CustomerLog]{}, apperr.NotFound("No log of customer with id: %d", customerID)
	}
	return model.NewPagedModel(entries, total, req.Size), nil
}
