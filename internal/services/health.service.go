package services

import (
	"context"
	"time"

	"github.com/nimasrn/bank-records/pkg/pg"
)

// HealthService reports whether the service can reach its database.
type HealthService struct {
	db *pg.DB
}

func NewHealthService(db *pg.DB) *HealthService {
	return &HealthService{db: db}
}

func (s *HealthService) Get() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.Read(ctx).DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
