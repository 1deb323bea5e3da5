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
	ErrCustomerLogNotFound = errors.New("customer log not found")
)

// CustomerLogRepository appends and reads audit rows. There is no update
// or single-row delete on purpose.
type CustomerLogRepository struct {
	*pg.DB
}

func NewCustomerLogRepository(db *pg.DB) *CustomerLogRepository {
	return &CustomerLogRepository{
		db,
	}
}

func (r *CustomerLogRepository) Create(ctx context.Context, log *model.CustomerLog) (*model.CustomerLog, error) {
	entity := toCustomerLogEntity(log)
	entity.Created = time.Time{} // storage-assigned

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerLogModel(entity), nil
}

func (r *CustomerLogRepository) FindByID(ctx context.Context, id int64) (*model.CustomerLog, error) {
	var entity CustomerLogEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerLogNotFound
		}
		return nil, err
	}
	return toCustomerLogModel(&entity), nil
}

func (r *CustomerLogRepository) FindAllByCustomerID(ctx context.Context, customerID int64, req model.PageRequest) ([]*model.CustomerLog, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&CustomerLogEntity{}).
		Where("customer_id = ?", customerID)
	return r.findPage(req, q)
}

func (r *CustomerLogRepository) FindAllByCreatedBetween(ctx context.Context, from, to time.Time, req model.PageRequest) ([]*model.CustomerLog, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&CustomerLogEntity{}).
		Where("created >= ?", from).
		Where("created < ?", to)
	return r.findPage(req, q)
}

func (r *CustomerLogRepository) FindAllByCustomerIDAndCreatedBetween(ctx context.Context, customerID int64, from, to time.Time, req model.PageRequest) ([]*model.CustomerLog, int64, error) {
	q := r.Read(ctx).WithContext(ctx).
		Model(&CustomerLogEntity{}).
		Where("customer_id = ?", customerID).
		Where("created >= ?", from).
		Where("created < ?", to)
	return r.findPage(req, q)
}

func (r *CustomerLogRepository) findPage(req model.PageRequest, q *gorm.DB) ([]*model.CustomerLog, int64, error) {
	order, err := orderClause(req, customerLogSortColumns)
	if err != nil {
		return nil, 0, err
	}

	// Count before pagination
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []*CustomerLogEntity
	if err := q.Order(order).Limit(req.Size).Offset(req.Offset()).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toCustomerLogModels(entities), total, nil
}

func (r *CustomerLogRepository) DeleteAll(ctx context.Context) error {
	return r.Write(ctx).WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&CustomerLogEntity{}).
		Error
}
