package model

import "time"

// Log types recorded for customer mutations. The log table is append-only;
// rows are written as a side effect of customer save/delete and never
// modified afterwards.
const (
	LogTypeInserted = "inserted"
	LogTypeUpdated  = "updated"
	LogTypeDeleted  = "deleted"
)

type CustomerLog struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	OldVersion *string   `json:"old_version"`
	NewVersion *string   `json:"new_version"`
	LogType    string    `json:"log_type"`
	Created    time.Time `json:"created"`
}

func (CustomerLog) TableName() string { return "customer_log" }
