package implementation

import (
	"context"

	"testdesk-be/internal/entity"
	"testdesk-be/internal/mapper"
	"testdesk-be/internal/model"
	"testdesk-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ProofFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProofFileMapper
}

func NewProofFileRepository(db *gorm.DB) contract.ProofFileRepository {
	return &ProofFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProofFileMapper(),
	}
}

func (r *ProofFileRepositoryImpl) Create(ctx context.Context, proof *entity.ProofFile) error {
	m := r.mapper.ToModel(proof)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*proof = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProofFileRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ProofFile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
