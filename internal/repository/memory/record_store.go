package memory

import (
	"context"
	"sort"
	"sync"

	"testdesk-be/internal/entity"
	"testdesk-be/internal/repository/contract"
	"testdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// RecordStore is an in-memory implementation of the record-store contracts.
// It backs unit tests and local experiments where Postgres is overkill. It
// satisfies both unitofwork.RepositoryFactory and unitofwork.UnitOfWork so it
// can be dropped in wherever the GORM factory is expected.
type RecordStore struct {
	mu        sync.RWMutex
	projects  []*entity.Project
	scenarios []*entity.Scenario
	steps     []*entity.Step
	defects   []*entity.Defect
	proofs    []*entity.ProofFile
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (s *RecordStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return s
}

func (s *RecordStore) ProjectRepository() contract.ProjectRepository {
	return &projectRepo{store: s}
}

func (s *RecordStore) ScenarioRepository() contract.ScenarioRepository {
	return &scenarioRepo{store: s}
}

func (s *RecordStore) StepRepository() contract.StepRepository {
	return &stepRepo{store: s}
}

func (s *RecordStore) DefectRepository() contract.DefectRepository {
	return &defectRepo{store: s}
}

func (s *RecordStore) ProofFileRepository() contract.ProofFileRepository {
	return &proofFileRepo{store: s}
}

func (s *RecordStore) scenarioById(id uuid.UUID) *entity.Scenario {
	for _, sc := range s.scenarios {
		if sc.Id == id {
			return sc
		}
	}
	return nil
}

func (s *RecordStore) stepById(id uuid.UUID) *entity.Step {
	for _, st := range s.steps {
		if st.Id == id {
			return st
		}
	}
	return nil
}

// --- Project ---

type projectRepo struct {
	store *RecordStore
}

func (r *projectRepo) Create(ctx context.Context, project *entity.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if project.Id == uuid.Nil {
		project.Id = uuid.New()
	}
	copied := *project
	r.store.projects = append(r.store.projects, &copied)
	return nil
}

func (r *projectRepo) FindAll(ctx context.Context) ([]*entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Project, len(r.store.projects))
	copy(out, r.store.projects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.projects)), nil
}

// --- Scenario ---

type scenarioRepo struct {
	store *RecordStore
}

func (r *scenarioRepo) Create(ctx context.Context, scenario *entity.Scenario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if scenario.Id == uuid.Nil {
		scenario.Id = uuid.New()
	}
	copied := *scenario
	r.store.scenarios = append(r.store.scenarios, &copied)
	return nil
}

func (r *scenarioRepo) FindAllOrdered(ctx context.Context) ([]*entity.Scenario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Scenario, len(r.store.scenarios))
	copy(out, r.store.scenarios)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *scenarioRepo) FindMostDefective(ctx context.Context) (*contract.ScenarioDefectCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if len(r.store.scenarios) == 0 {
		return nil, nil
	}

	counts := make(map[uuid.UUID]int64)
	for _, d := range r.store.defects {
		if st := r.store.stepById(d.StepId); st != nil {
			counts[st.ScenarioId]++
		}
	}

	var best *entity.Scenario
	var bestCount int64
	for _, sc := range r.store.scenarios {
		c := counts[sc.Id]
		if best == nil || c > bestCount || (c == bestCount && sc.CreatedAt.Before(best.CreatedAt)) {
			best = sc
			bestCount = c
		}
	}
	return &contract.ScenarioDefectCount{
		ScenarioTitle: best.Title,
		DefectCount:   bestCount,
	}, nil
}

func (r *scenarioRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.scenarios)), nil
}

// --- Step ---

type stepRepo struct {
	store *RecordStore
}

func (r *stepRepo) Create(ctx context.Context, step *entity.Step) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if step.Id == uuid.Nil {
		step.Id = uuid.New()
	}
	copied := *step
	r.store.steps = append(r.store.steps, &copied)
	return nil
}

func (r *stepRepo) FindByStatusWithScenario(ctx context.Context, status string) ([]*contract.StepWithScenario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var rows []*contract.StepWithScenario
	for _, st := range r.store.steps {
		if st.Status != status {
			continue
		}
		sc := r.store.scenarioById(st.ScenarioId)
		if sc == nil {
			continue
		}
		rows = append(rows, &contract.StepWithScenario{
			ScenarioTitle: sc.Title,
			Position:      st.Position,
			Description:   st.Description,
			Status:        st.Status,
		})
	}
	sortStepRows(rows)
	return rows, nil
}

func (r *stepRepo) FindWithoutProof(ctx context.Context) ([]*contract.StepWithScenario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	proved := make(map[uuid.UUID]bool)
	for _, p := range r.store.proofs {
		proved[p.StepId] = true
	}
	var rows []*contract.StepWithScenario
	for _, st := range r.store.steps {
		if proved[st.Id] {
			continue
		}
		sc := r.store.scenarioById(st.ScenarioId)
		if sc == nil {
			continue
		}
		rows = append(rows, &contract.StepWithScenario{
			ScenarioTitle: sc.Title,
			Position:      st.Position,
			Description:   st.Description,
			Status:        st.Status,
		})
	}
	sortStepRows(rows)
	return rows, nil
}

func (r *stepRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.steps)), nil
}

func sortStepRows(rows []*contract.StepWithScenario) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ScenarioTitle != rows[j].ScenarioTitle {
			return rows[i].ScenarioTitle < rows[j].ScenarioTitle
		}
		return rows[i].Position < rows[j].Position
	})
}

// --- Defect ---

type defectRepo struct {
	store *RecordStore
}

func (r *defectRepo) Create(ctx context.Context, defect *entity.Defect) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if defect.Id == uuid.Nil {
		defect.Id = uuid.New()
	}
	copied := *defect
	r.store.defects = append(r.store.defects, &copied)
	return nil
}

func (r *defectRepo) FindByStatusWithContext(ctx context.Context, status string) ([]*contract.DefectWithContext, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var rows []*contract.DefectWithContext
	for _, d := range r.store.defects {
		if d.Status != status {
			continue
		}
		st := r.store.stepById(d.StepId)
		if st == nil {
			continue
		}
		sc := r.store.scenarioById(st.ScenarioId)
		if sc == nil {
			continue
		}
		rows = append(rows, &contract.DefectWithContext{
			ScenarioTitle: sc.Title,
			StepPosition:  st.Position,
			Description:   d.Description,
			Status:        d.Status,
			CreatedAt:     d.CreatedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *defectRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.defects)), nil
}

// --- ProofFile ---

type proofFileRepo struct {
	store *RecordStore
}

func (r *proofFileRepo) Create(ctx context.Context, proof *entity.ProofFile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if proof.Id == uuid.Nil {
		proof.Id = uuid.New()
	}
	copied := *proof
	r.store.proofs = append(r.store.proofs, &copied)
	return nil
}

func (r *proofFileRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.proofs)), nil
}
