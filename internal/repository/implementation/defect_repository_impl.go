package implementation

import (
	"context"

	"testdesk-be/internal/entity"
	"testdesk-be/internal/mapper"
	"testdesk-be/internal/model"
	"testdesk-be/internal/repository/contract"

	"gorm.io/gorm"
)

type DefectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DefectMapper
}

func NewDefectRepository(db *gorm.DB) contract.DefectRepository {
	return &DefectRepositoryImpl{
		db:     db,
		mapper: mapper.NewDefectMapper(),
	}
}

func (r *DefectRepositoryImpl) Create(ctx context.Context, defect *entity.Defect) error {
	m := r.mapper.ToModel(defect)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*defect = *r.mapper.ToEntity(m)
	return nil
}

func (r *DefectRepositoryImpl) FindByStatusWithContext(ctx context.Context, status string) ([]*contract.DefectWithContext, error) {
	var rows []*contract.DefectWithContext
	err := r.db.WithContext(ctx).
		Table("defects").
		Select("scenarios.title AS scenario_title, steps.position AS step_position, defects.description AS description, defects.status AS status, defects.created_at AS created_at").
		Joins("JOIN steps ON steps.id = defects.step_id").
		Joins("JOIN scenarios ON scenarios.id = steps.scenario_id").
		Where("defects.status = ?", status).
		Order("defects.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefectRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Defect{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
