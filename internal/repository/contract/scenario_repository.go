package contract

import (
	"context"

	"testdesk-be/internal/entity"
)

type ScenarioRepository interface {
	Create(ctx context.Context, scenario *entity.Scenario) error

	// FindAllOrdered returns every scenario ordered by creation time ascending.
	FindAllOrdered(ctx context.Context) ([]*entity.Scenario, error)

	// FindMostDefective returns the scenario whose steps carry the highest
	// defect count (any status). Ties resolve to the earliest-created
	// scenario. Returns nil when the store holds no scenarios.
	FindMostDefective(ctx context.Context) (*ScenarioDefectCount, error)

	Count(ctx context.Context) (int64, error)
}
