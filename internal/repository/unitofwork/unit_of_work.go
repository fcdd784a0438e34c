package unitofwork

import (
	"testdesk-be/internal/repository/contract"
)

// UnitOfWork groups the record-store repositories behind one handle. The
// question-answering core only reads through it; writes happen in the
// external CRUD layer (and the seeder).
type UnitOfWork interface {
	ProjectRepository() contract.ProjectRepository
	ScenarioRepository() contract.ScenarioRepository
	StepRepository() contract.StepRepository
	DefectRepository() contract.DefectRepository
	ProofFileRepository() contract.ProofFileRepository
}
