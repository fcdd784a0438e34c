package mapper

import (
	"testdesk-be/internal/entity"
	"testdesk-be/internal/model"
)

type ScenarioMapper struct{}

func NewScenarioMapper() *ScenarioMapper {
	return &ScenarioMapper{}
}

func (m *ScenarioMapper) ToEntity(s *model.Scenario) *entity.Scenario {
	if s == nil {
		return nil
	}
	return &entity.Scenario{
		Id:        s.Id,
		ProjectId: s.ProjectId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ScenarioMapper) ToModel(s *entity.Scenario) *model.Scenario {
	if s == nil {
		return nil
	}
	return &model.Scenario{
		Id:        s.Id,
		ProjectId: s.ProjectId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ScenarioMapper) ToEntities(scenarios []*model.Scenario) []*entity.Scenario {
	entities := make([]*entity.Scenario, len(scenarios))
	for i, s := range scenarios {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
