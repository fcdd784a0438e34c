package entity

import (
	"time"

	"github.com/google/uuid"
)

type Scenario struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Title     string
	CreatedAt time.Time
}
