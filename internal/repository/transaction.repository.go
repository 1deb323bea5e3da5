package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/pkg/pg"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

type TransactionRepository struct {
	*pg.DB
}

func NewTransactionRepository(db *pg.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	entity := toTransactionEntity(txn)
	entity.Created = time.Time{} // storage-assigned, never caller-supplied

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toTransactionModel(entity), nil
}

// Update rewrites amount and owner only; the created timestamp is
// immutable after insert.
func (r *TransactionRepository) Update(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	result := r.Write(ctx).WithContext(ctx).
		Model(&TransactionEntity{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"amount":      txn.Amount,
			"customer_id": txn.CustomerID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTransactionNotFound
	}

	return r.FindByID(ctx, txn.ID)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var entity TransactionEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return toTransactionModel(&entity), nil
}

func (r *TransactionRepository) FindAll(ctx context.Context, req model.PageRequest) ([]*model.Transaction, int64, error) {
	return r.findPage(req, r.Read(ctx).WithContext(ctx).Model(&TransactionEntity{}))
}

func (r *TransactionRepository) FindAllByCustomerID(ctx context.Context, customerID int64, req model.PageRequest) ([]*model.Transaction, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&TransactionEntity{}).
		Where("customer_id = ?", customerID)
	return r.findPage(req, q)
}

func (r *TransactionRepository) FindAllByCustomerIDAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) ([]*model.Transaction, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&TransactionEntity{}).
		Where("customer_id = ?", customerID).
		Where("created >= ?", from).
		Where("created < ?", to)
	return r.findPage(req, q)
}

func (r *TransactionRepository) findPage(req model.PageRequest, q *gorm.DB) ([]*model.Transaction, int64, error) {
	order, err := orderClause(req, transactionSortColumns)
	if err != nil {
		return nil, 0, err
	}

	// Count before pagination
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []*TransactionEntity
	if err := q.Order(order).Limit(req.Size).Offset(req.Offset()).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toTransactionModels(entities), total, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).Delete(&TransactionEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteAll(ctx context.Context) error {
	return r.Write(ctx).WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&TransactionEntity{}).
		Error
}
