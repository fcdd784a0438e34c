package contract

import (
	"context"

	"testdesk-be/internal/entity"
)

type StepRepository interface {
	Create(ctx context.Context, step *entity.Step) error

	// FindByStatusWithScenario returns steps in the given status annotated
	// with their scenario title, ordered by scenario title then position.
	FindByStatusWithScenario(ctx context.Context, status string) ([]*StepWithScenario, error)

	// FindWithoutProof returns steps that have no proof file attached,
	// ordered by scenario title then position.
	FindWithoutProof(ctx context.Context) ([]*StepWithScenario, error)

	Count(ctx context.Context) (int64, error)
}
