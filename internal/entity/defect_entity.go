package entity

import (
	"time"

	"github.com/google/uuid"
)

type Defect struct {
	Id          uuid.UUID
	StepId      uuid.UUID
	Description string
	Status      string
	CreatedAt   time.Time
}
