package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/pkg/pg"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerModel(&entity), nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, req model.PageRequest) ([]*model.Customer, int64, error) {
	return r.findPage(req, r.Read(ctx).WithContext(ctx).Model(&CustomerEntity{}))
}

func (r *CustomerRepository) FindAllByFullName(ctx context.Context, fullName string, req model.PageRequest) ([]*model.Customer, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&CustomerEntity{}).
		Where("full_name = ?", fullName)
	return r.findPage(req, q)
}

func (r *CustomerRepository) FindAllByBalanceBetween(ctx context.Context, min, max decimal.Decimal, req model.PageRequest) ([]*model.Customer, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&CustomerEntity{}).
		Where("balance BETWEEN ? AND ?", min, max)
	return r.findPage(req, q)
}

func (r *CustomerRepository) findPage(req model.PageRequest, q *gorm.DB) ([]*model.Customer, int64, error) {
	order, err := orderClause(req, customerSortColumns)
	if err != nil {
		return nil, 0, err
	}

	// Count before pagination
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []*CustomerEntity
	if err := q.Order(order).Limit(req.Size).Offset(req.Offset()).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toCustomerModels(entities), total, nil
}

func (r *CustomerRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&CustomerEntity{}).
		Where("phone_number = ?", phoneNumber).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(customer)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

// Update overwrites the full row for the entity's id.
func (r *CustomerRepository) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(customer)

	if err := r.Write(ctx).WithContext(ctx).Save(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

// Delete removes the row; owned transactions go with it through the
// database's cascade rule.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).Delete(&CustomerEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) DeleteAll(ctx context.Context) error {
	return r.Write(ctx).WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&CustomerEntity{}).
		Error
}
