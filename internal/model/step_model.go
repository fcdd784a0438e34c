package model

import (
	"time"

	"github.com/google/uuid"
)

type Step struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ScenarioId  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_steps_scenario_position"`
	Position    int       `gorm:"not null;uniqueIndex:idx_steps_scenario_position"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(16);not null"`
	Assignee    *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Step) TableName() string {
	return "steps"
}
