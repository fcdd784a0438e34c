package implementation

import (
	"context"

	"testdesk-be/internal/entity"
	"testdesk-be/internal/mapper"
	"testdesk-be/internal/model"
	"testdesk-be/internal/repository/contract"

	"gorm.io/gorm"
)

type StepRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StepMapper
}

func NewStepRepository(db *gorm.DB) contract.StepRepository {
	return &StepRepositoryImpl{
		db:     db,
		mapper: mapper.NewStepMapper(),
	}
}

func (r *StepRepositoryImpl) Create(ctx context.Context, step *entity.Step) error {
	m := r.mapper.ToModel(step)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*step = *r.mapper.ToEntity(m)
	return nil
}

func (r *StepRepositoryImpl) FindByStatusWithScenario(ctx context.Context, status string) ([]*contract.StepWithScenario, error) {
	var rows []*contract.StepWithScenario
	err := r.db.WithContext(ctx).
		Table("steps").
		Select("scenarios.title AS scenario_title, steps.position AS position, steps.description AS description, steps.status AS status").
		Joins("JOIN scenarios ON scenarios.id = steps.scenario_id").
		Where("steps.status = ?", status).
		Order("scenarios.title ASC, steps.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StepRepositoryImpl) FindWithoutProof(ctx context.Context) ([]*contract.StepWithScenario, error) {
	var rows []*contract.StepWithScenario
	err := r.db.WithContext(ctx).
		Table("steps").
		Select("scenarios.title AS scenario_title, steps.position AS position, steps.description AS description, steps.status AS status").
		Joins("JOIN scenarios ON scenarios.id = steps.scenario_id").
		Joins("LEFT JOIN proof_files ON proof_files.step_id = steps.id").
		Where("proof_files.id IS NULL").
		Order("scenarios.title ASC, steps.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StepRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Step{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
