package contract

import (
	"context"

	"testdesk-be/internal/entity"
)

type ProofFileRepository interface {
	Create(ctx context.Context, proof *entity.ProofFile) error
	Count(ctx context.Context) (int64, error)
}
