package service

import (
	"context"

	"health-records-service/internal/domain/entity"
	"health-records-service/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*mockAuditLogRepository)(nil)

type mockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, log *entity.AuditLog) error
	created    []*entity.AuditLog
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	m.created = append(m.created, log)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func (m *mockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	return nil, nil
}
