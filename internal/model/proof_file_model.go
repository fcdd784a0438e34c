package model

import (
	"time"

	"github.com/google/uuid"
)

type ProofFile struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StepId         uuid.UUID `gorm:"type:uuid;not null;index"`
	StoredFilename string    `gorm:"type:varchar(512);not null"`
	ContentType    string    `gorm:"type:varchar(128)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (ProofFile) TableName() string {
	return "proof_files"
}
