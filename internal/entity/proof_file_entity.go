package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProofFile is an uploaded evidence file attached to a step by the CRUD layer.
type ProofFile struct {
	Id             uuid.UUID
	StepId         uuid.UUID
	StoredFilename string
	ContentType    string
	CreatedAt      time.Time
}
