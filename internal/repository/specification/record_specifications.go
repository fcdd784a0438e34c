package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByScenarioID struct {
	ScenarioID uuid.UUID
}

func (s ByScenarioID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scenario_id = ?", s.ScenarioID)
}

type ByStepID struct {
	StepID uuid.UUID
}

func (s ByStepID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("step_id = ?", s.StepID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
