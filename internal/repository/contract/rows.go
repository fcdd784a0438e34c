package contract

import "time"

// Projection rows returned by the read-side queries. Field names follow the
// column aliases the GORM implementations select into them.

type StepWithScenario struct {
	ScenarioTitle string
	Position      int
	Description   string
	Status        string
}

type DefectWithContext struct {
	ScenarioTitle string
	StepPosition  int
	Description   string
	Status        string
	CreatedAt     time.Time
}

type ScenarioDefectCount struct {
	ScenarioTitle string
	DefectCount   int64
}
