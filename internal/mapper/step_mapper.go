package mapper

import (
	"testdesk-be/internal/entity"
	"testdesk-be/internal/model"
)

type StepMapper struct{}

func NewStepMapper() *StepMapper {
	return &StepMapper{}
}

func (m *StepMapper) ToEntity(s *model.Step) *entity.Step {
	if s == nil {
		return nil
	}
	return &entity.Step{
		Id:          s.Id,
		ScenarioId:  s.ScenarioId,
		Position:    s.Position,
		Description: s.Description,
		Status:      s.Status,
		Assignee:    s.Assignee,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StepMapper) ToModel(s *entity.Step) *model.Step {
	if s == nil {
		return nil
	}
	return &model.Step{
		Id:          s.Id,
		ScenarioId:  s.ScenarioId,
		Position:    s.Position,
		Description: s.Description,
		Status:      s.Status,
		Assignee:    s.Assignee,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StepMapper) ToEntities(steps []*model.Step) []*entity.Step {
	entities := make([]*entity.Step, len(steps))
	for i, s := range steps {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
