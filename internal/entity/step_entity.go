package entity

import (
	"time"

	"github.com/google/uuid"
)

// Step is one ordered action inside a scenario. Position is 1-based and
// contiguous per scenario.
type Step struct {
	Id          uuid.UUID
	ScenarioId  uuid.UUID
	Position    int
	Description string
	Status      string
	Assignee    *string
	CreatedAt   time.Time
}
