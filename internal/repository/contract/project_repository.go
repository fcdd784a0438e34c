package contract

import (
	"context"

	"testdesk-be/internal/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindAll(ctx context.Context) ([]*entity.Project, error)
	Count(ctx context.Context) (int64, error)
}
