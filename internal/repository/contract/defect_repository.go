package contract

import (
	"context"

	"testdesk-be/internal/entity"
)

type DefectRepository interface {
	Create(ctx context.Context, defect *entity.Defect) error

	// FindByStatusWithContext returns defects in the given status annotated
	// with their owning step and scenario, ordered by defect creation time
	// ascending.
	FindByStatusWithContext(ctx context.Context, status string) ([]*DefectWithContext, error)

	Count(ctx context.Context) (int64, error)
}
