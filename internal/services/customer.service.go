package services

import (
	"context"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/nimasrn/bank-records/internal/validation"
	"github.com/nimasrn/bank-records/pkg/logger"
	"github.com/nimasrn/bank-records/pkg/prom"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context, req model.PageRequest) ([]*model.Customer, int64, error)
	FindAllByFullName(ctx context.Context, fullName string, req model.PageRequest) ([]*model.Customer, int64, error)
	FindAllByBalanceBetween(ctx context.Context, min, max decimal.Decimal, req model.PageRequest) ([]*model.Customer, int64, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CustomerLogWriter is the slice of the log repository the customer
// service needs to append audit entries.
type CustomerLogWriter interface {
	Create(ctx context.Context, log *model.CustomerLog) (*model.CustomerLog, error)
}

// CustomerService owns every mutation of customer rows. Each insert,
// update and delete appends a customer_log entry in the same database
// transaction, so the audit trail can never run ahead of or behind the
// data it describes.
type CustomerService struct {
	customers CustomerRepository
	logs      CustomerLogWriter

	validFullName validation.Validation[string]
	validPhone    validation.Validation[string]
	validBalance  validation.Validation[decimal.Decimal]
}

func NewCustomerService(customers CustomerRepository, logs CustomerLogWriter) *CustomerService {
	return &CustomerService{
		customers:     customers,
		logs:          logs,
		validFullName: validation.NotBlank,
		validPhone:    validation.NotBlank,
		validBalance:  validation.GreaterThan(0.0),
	}
}

func (s *CustomerService) validate(req model.CustomerSaveRequest) error {
	if err := s.validFullName(req.FullName).ErrIfInvalid(fieldCustomerFullName); err != nil {
		return err
	}
	if err := s.validPhone(req.PhoneNumber).ErrIfInvalid(fieldCustomerPhone); err != nil {
		return err
	}
	if err := validation.NotNil[decimal.Decimal]()(req.Balance).ErrIfInvalid(fieldCustomerBalance); err != nil {
		return err
	}
	return s.validBalance(*req.Balance).ErrIfInvalid(fieldCustomerBalance)
}

// Save validates the request and routes it to an insert when no id is
// present, an update otherwise.
func (s *CustomerService) Save(ctx context.Context, req model.CustomerSaveRequest) (*model.Customer, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	customer := &model.Customer{
		ID:          req.ID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Balance:     *req.Balance,
	}
	if customer.ID == 0 {
		return s.insert(ctx, customer)
	}
	return s.update(ctx, customer)
}

func (s *CustomerService) insert(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	exists, err := s.customers.ExistsByPhoneNumber(ctx, customer.PhoneNumber)
	if err != nil {
		return nil, storageErr(err, "checking phone number %s", customer.PhoneNumber)
	}
	if exists {
		return nil, apperr.Conflict("phoneNumber:%s already exists", customer.PhoneNumber)
	}
	var saved *model.Customer
	err = s.customers.WithinTransaction(ctx, func(ctx context.Context) error {
		saved, err = s.customers.Create(ctx, customer)
		if err != nil {
			return storageErr(err, "saving customer %s", customer.PhoneNumber)
		}
		return s.appendLog(ctx, saved.ID, model.LogTypeInserted, nil, saved)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("customer created", "customer_id", saved.ID)
	return saved, nil
}

func (s *CustomerService) update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.findByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	// An update that changes nothing writes neither the row nor a log
	// entry.
	if existing.Equal(customer) {
		return existing, nil
	}
	var saved *model.Customer
	err = s.customers.WithinTransaction(ctx, func(ctx context.Context) error {
		saved, err = s.customers.Update(ctx, customer)
		if err != nil {
			return storageErr(err, "updating customer %d", customer.ID)
		}
		return s.appendLog(ctx, saved.ID, model.LogTypeUpdated, existing, saved)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("customer updated", "customer_id", saved.ID)
	return saved, nil
}

// HardDelete removes the customer row, cascading over its transactions,
// and returns the state the customer had right before deletion. The
// log entry written here keeps only an old version.
func (s *CustomerService) HardDelete(ctx context.Context, id int64) (*model.Customer, error) {
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.customers.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.customers.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return apperr.NotFound("customerId:%d", id)
			}
			return storageErr(err, "deleting customer %d", id)
		}
		return s.appendLog(ctx, id, model.LogTypeDeleted, existing, nil)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("customer deleted", "customer_id", id)
	return existing, nil
}

func (s *CustomerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.findByID(ctx, id)
}

func (s *CustomerService) FindAll(ctx context.Context, req model.PageRequest) (model.PagedModel[*model.Customer], error) {
	customers, total, err := s.customers.FindAll(ctx, req)
	if err != nil {
		return model.PagedModel[*model.Customer]{}, storageErr(err, "listing customers")
	}
	if len(customers) == 0 {
		return model.PagedModel[*model.Customer]{}, apperr.NotFound("No customer found")
	}
	return model.NewPagedModel(customers, total, req.Size), nil
}

func (s *CustomerService) FindAllByFullName(ctx context.Context, fullName string, req model.PageRequest) (model.PagedModel[*model.Customer], error) {
	customers, total, err := s.customers.FindAllByFullName(ctx, fullName, req)
	if err != nil {
		return model.PagedModel[*model.Customer]{}, storageErr(err, "listing customers by full name %s", fullName)
	}
	if len(customers) == 0 {
		return model.PagedModel[*model.Customer]{}, apperr.NotFound("fullName:%s", fullName)
	}
	return model.NewPagedModel(customers, total, req.Size), nil
}

func (s *CustomerService) FindAllByBalanceBetween(ctx context.Context, min, max decimal.Decimal, req model.PageRequest) (model.PagedModel[*model.Customer], error) {
	customers, total, err := s.customers.FindAllByBalanceBetween(ctx, min, max, req)
	if err != nil {
		return model.PagedModel[*model.Customer]{}, storageErr(err, "listing customers by balance")
	}
	if len(customers) == 0 {
		return model.PagedModel[*model.Customer]{}, apperr.NotFound("Min:%s Max:%s", min, max)
	}
	return model.NewPagedModel(customers, total, req.Size), nil
}

func (s *CustomerService) findByID(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, apperr.NotFound("customerId:%d", id)
		}
		return nil, storageErr(err, "loading customer %d", id)
	}
	return customer, nil
}

// appendLog serializes the before and after states and stores them as
// one customer_log row. Snapshots are taken here, inside the caller's
// transaction, so the recorded versions match exactly what was
// committed.
func (s *CustomerService) appendLog(ctx context.Context, customerID int64, logType string, old, new *model.Customer) error {
	entry := &model.CustomerLog{CustomerID: customerID, LogType: logType}
	if old != nil {
		snapshot, err := old.Snapshot()
		if err != nil {
			return apperr.Internal(err, "serializing customer %d", customerID)
		}
		entry.OldVersion = &snapshot
	}
	if new != nil {
		snapshot, err := new.Snapshot()
		if err != nil {
			return apperr.Internal(err, "serializing customer %d", customerID)
		}
		entry.NewVersion = &snapshot
	}
	if _, err := s.logs.Create(ctx, entry); err != nil {
		return storageErr(err, "recording %s log for customer %d", logType, customerID)
	}
	prom.IncCounterVec(prom.SystemAudit, prom.MetricCustomerLogsTotal, logType)
	return nil
}
