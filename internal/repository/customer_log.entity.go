package repository

import (
	"time"

	"github.com/nimasrn/bank-records/internal/model"
)

// CustomerLogEntity carries no foreign key on customer_id: log rows must
// outlive the customer they describe.
type CustomerLogEntity struct {
	ID         int64     `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64     `db:"customer_id" gorm:"column:customer_id;index"`
	OldVersion *string   `db:"old_version" gorm:"column:old_version;type:text"`
	NewVersion *string   `db:"new_version" gorm:"column:new_version;type:text"`
	LogType    string    `db:"log_type"    gorm:"column:log_type;not null"`
	Created    time.Time `db:"created"     gorm:"column:created;autoCreateTime"`
}

func (CustomerLogEntity) TableName() string {
	return "customer_log"
}

var customerLogSortColumns = map[string]string{
	"id":          "id",
	"log_type":    "log_type",
	"logType":     "log_type",
	"created":     "created",
	"customer_id": "customer_id",
	"customerId":  "customer_id",
}

func toCustomerLogEntity(m *model.CustomerLog) *CustomerLogEntity {
	if m == nil {
		return nil
	}
	return &CustomerLogEntity{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		OldVersion: m.OldVersion,
		NewVersion: m.NewVersion,
		LogType:    m.LogType,
		Created:    m.Created,
	}
}

func toCustomerLogModel(e *CustomerLogEntity) *model.CustomerLog {
	if e == nil {
		return nil
	}
	return &model.CustomerLog{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		OldVersion: e.OldVersion,
		NewVersion: e.NewVersion,
		LogType:    e.LogType,
		Created:    e.Created,
	}
}

func toCustomerLogModels(entities []*CustomerLogEntity) []*model.CustomerLog {
	if entities == nil {
		return nil
	}
	models := make([]*model.CustomerLog, len(entities))
	for i, e := range entities {
		models[i] = toCustomerLogModel(e)
	}
	return models
}
