package services

import (
	"context"
	"time"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/nimasrn/bank-records/internal/validation"
	"github.com/nimasrn/bank-records/pkg/logger"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	FindAll(ctx context.Context, req model.PageRequest) ([]*model.Transaction, int64, error)
	FindAllByCustomerID(ctx context.Context, customerID int64, req model.PageRequest) ([]*model.Transaction, int64, error)
	FindAllByCustomerIDAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) ([]*model.Transaction, int64, error)
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	Update(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerReader is the read-only view of customers the transaction
// service uses to reject listings for customers that do not exist.
type CustomerReader interface {
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
}

// TransactionService manages transaction rows. Transactions are not
// audited; only the customer they belong to is.
type TransactionService struct {
	transactions TransactionRepository
	customers    CustomerReader

	validAmount validation.Validation[decimal.Decimal]
}

func NewTransactionService(transactions TransactionRepository, customers CustomerReader) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		customers:    customers,
		validAmount:  validation.GreaterThan(0.0),
	}
}

func (s *TransactionService) validate(req model.TransactionSaveRequest) error {
	if err := validation.NotNil[int64]()(req.CustomerID).ErrIfInvalid(fieldCustomerID); err != nil {
		return err
	}
	if err := validation.GreaterThanInt(0)(*req.CustomerID).ErrIfInvalid(fieldCustomerID); err != nil {
		return err
	}
	if err := validation.NotNil[decimal.Decimal]()(req.Amount).ErrIfInvalid(fieldTransactionAmount); err != nil {
		return err
	}
	return s.validAmount(*req.Amount).ErrIfInvalid(fieldTransactionAmount)
}

// Save validates the request before any storage access, then inserts
// when no id is present and updates otherwise. A dangling customer
// reference surfaces as a constraint violation from storage.
func (s *TransactionService) Save(ctx context.Context, req model.TransactionSaveRequest) (*model.Transaction, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	txn := &model.Transaction{
		ID:         req.ID,
		CustomerID: *req.CustomerID,
		Amount:     *req.Amount,
	}
	if txn.ID == 0 {
		saved, err := s.transactions.Create(ctx, txn)
		if err != nil {
			return nil, storageErr(err, "saving transaction for customer %d", txn.CustomerID)
		}
		logger.Info("transaction created", "transaction_id", saved.ID, "customer_id", saved.CustomerID)
		return saved, nil
	}
	saved, err := s.transactions.Update(ctx, txn)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, apperr.NotFound("transactionId:%d", txn.ID)
		}
		return nil, storageErr(err, "updating transaction %d", txn.ID)
	}
	logger.Info("transaction updated", "transaction_id", saved.ID)
	return saved, nil
}

func (s *TransactionService) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	txn, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, apperr.NotFound("transactionId:%d", id)
		}
		return nil, storageErr(err, "loading transaction %d", id)
	}
	return txn, nil
}

func (s *TransactionService) FindAll(ctx context.Context, req model.PageRequest) (model.PagedModel[*model.Transaction], error) {
	transactions, total, err := s.transactions.FindAll(ctx, req)
	if err != nil {
		return model.PagedModel[*model.Transaction]{}, storageErr(err, "listing transactions")
	}
	if len(transactions) == 0 {
		return model.PagedModel[*model.Transaction]{}, apperr.NotFound("No transaction found")
	}
	return model.NewPagedModel(transactions, total, req.Size), nil
}

// FindAllByCustomer checks the customer exists before listing, so a
// request against an unknown customer reports the customer, not an
// empty page.
func (s *TransactionService) FindAllByCustomer(ctx context.Context, customerID int64, req model.PageRequest) (model.PagedModel[*model.Transaction], error) {
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return model.PagedModel[*model.Transaction]{}, err
	}
	transactions, total, err := s.transactions.FindAllByCustomerID(ctx, customerID, req)
	if err != nil {
		return model.PagedModel[*model.Transaction]{}, storageErr(err, "listing transactions of customer %d", customerID)
	}
	if len(transactions) == 0 {
		return model.PagedModel[*model.Transaction]{}, apperr.NotFound("No transaction of customer with id: %d", customerID)
	}
	return model.NewPagedModel(transactions, total, req.Size), nil
}

func (s *TransactionService) FindAllByCustomerAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) (model.PagedModel[*model.Transaction], error) {
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return model.PagedModel[*model.Transaction]{}, err
	}
	transactions, total, err := s.transactions.FindAllByCustomerIDAndCreatedBetween(ctx, customerID, from, to, req)
	if err != nil {
		return model.PagedModel[*model.Transaction]{}, storageErr(err, "listing transactions of customer %d", customerID)
	}
	if len(transactions) == 0 {
		return model.PagedModel[*model.Transaction]{}, apperr.NotFound("No transaction of customer with id: %d between %s and %s", customerID, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return model.NewPagedModel(transactions, total, req.Size), nil
}

// HardDelete removes the transaction and returns its last state.
func (s *TransactionService) HardDelete(ctx context.Context, id int64) (*model.Transaction, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transactions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, apperr.NotFound("transactionId:%d", id)
		}
		return nil, storageErr(err, "deleting transaction %d", id)
	}
	logger.Info("transaction deleted", "transaction_id", id)
	return existing, nil
}

func (s *TransactionService) checkCustomer(ctx context.Context, customerID int64) error {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return apperr.NotFound("customerId:%d", customerID)
		}
		return storageErr(err, "loading customer %d", customerID)
	}
	return nil
}
