package model

import (
	"time"

	"github.com/google/uuid"
)

type Defect struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StepId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Defect) TableName() string {
	return "defects"
}
