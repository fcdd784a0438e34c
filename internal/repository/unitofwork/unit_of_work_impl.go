package unitofwork

import (
	"testdesk-be/internal/repository/contract"
	"testdesk-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.db)
}

func (u *UnitOfWorkImpl) ScenarioRepository() contract.ScenarioRepository {
	return implementation.NewScenarioRepository(u.db)
}

func (u *UnitOfWorkImpl) StepRepository() contract.StepRepository {
	return implementation.NewStepRepository(u.db)
}

func (u *UnitOfWorkImpl) DefectRepository() contract.DefectRepository {
	return implementation.NewDefectRepository(u.db)
}

func (u *UnitOfWorkImpl) ProofFileRepository() contract.ProofFileRepository {
	return implementation.NewProofFileRepository(u.db)
}
