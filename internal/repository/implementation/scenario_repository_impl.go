package implementation

import (
	"context"
	"errors"

	"testdesk-be/internal/entity"
	"testdesk-be/internal/mapper"
	"testdesk-be/internal/model"
	"testdesk-be/internal/repository/contract"
	"testdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScenarioRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScenarioMapper
}

func NewScenarioRepository(db *gorm.DB) contract.ScenarioRepository {
	return &ScenarioRepositoryImpl{
		db:     db,
		mapper: mapper.NewScenarioMapper(),
	}
}

func (r *ScenarioRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScenarioRepositoryImpl) Create(ctx context.Context, scenario *entity.Scenario) error {
	m := r.mapper.ToModel(scenario)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scenario = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScenarioRepositoryImpl) FindAllOrdered(ctx context.Context) ([]*entity.Scenario, error) {
	var models []*model.Scenario
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "created_at"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScenarioRepositoryImpl) FindMostDefective(ctx context.Context) (*contract.ScenarioDefectCount, error) {
	var row contract.ScenarioDefectCount
	err := r.db.WithContext(ctx).
		Table("scenarios").
		Select("scenarios.title AS scenario_title, COUNT(defects.id) AS defect_count").
		Joins("LEFT JOIN steps ON steps.scenario_id = scenarios.id").
		Joins("LEFT JOIN defects ON defects.step_id = steps.id").
		Group("scenarios.id, scenarios.title, scenarios.created_at").
		Order("defect_count DESC, scenarios.created_at ASC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *ScenarioRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Scenario{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
