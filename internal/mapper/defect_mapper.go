package mapper

import (
	"testdesk-be/internal/entity"
	"testdesk-be/internal/model"
)

type DefectMapper struct{}

func NewDefectMapper() *DefectMapper {
	return &DefectMapper{}
}

func (m *DefectMapper) ToEntity(d *model.Defect) *entity.Defect {
	if d == nil {
		return nil
	}
	return &entity.Defect{
		Id:          d.Id,
		StepId:      d.StepId,
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *DefectMapper) ToModel(d *entity.Defect) *model.Defect {
	if d == nil {
		return nil
	}
	return &model.Defect{
		Id:          d.Id,
		StepId:      d.StepId,
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *DefectMapper) ToEntities(defects []*model.Defect) []*entity.Defect {
	entities := make([]*entity.Defect, len(defects))
	for i, d := range defects {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
