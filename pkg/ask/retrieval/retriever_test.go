package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"testdesk-be/internal/constant"
	"testdesk-be/internal/entity"
	"testdesk-be/internal/repository/contract"
	"testdesk-be/internal/repository/memory"
	"testdesk-be/internal/repository/unitofwork"
	"testdesk-be/pkg/ask/intent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore builds the demo dataset: three scenarios, "Login" with two open
// defects on its failed step, "Search" with one failed step, and a scatter of
// steps without proof files.
func seedStore(t *testing.T) *memory.RecordStore {
	t.Helper()
	store := memory.NewRecordStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	project := &entity.Project{Id: uuid.New(), Name: "Webshop Release 2.4", CreatedAt: base}
	require.NoError(t, store.ProjectRepository().Create(ctx, project))

	login := &entity.Scenario{Id: uuid.New(), ProjectId: project.Id, Title: "Login", CreatedAt: base}
	checkout := &entity.Scenario{Id: uuid.New(), ProjectId: project.Id, Title: "Checkout", CreatedAt: base.Add(time.Hour)}
	search := &entity.Scenario{Id: uuid.New(), ProjectId: project.Id, Title: "Search", CreatedAt: base.Add(2 * time.Hour)}
	for _, sc := range []*entity.Scenario{login, checkout, search} {
		require.NoError(t, store.ScenarioRepository().Create(ctx, sc))
	}

	loginSubmit := &entity.Step{
		Id: uuid.New(), ScenarioId: login.Id, Position: 3,
		Description: "Submit form", Status: constant.StepStatusFailed, CreatedAt: base,
	}
	steps := []*entity.Step{
		{Id: uuid.New(), ScenarioId: login.Id, Position: 1, Description: "Open login page", Status: constant.StepStatusPassed, CreatedAt: base},
		{Id: uuid.New(), ScenarioId: login.Id, Position: 2, Description: "Enter valid credentials", Status: constant.StepStatusPassed, CreatedAt: base},
		loginSubmit,
		{Id: uuid.New(), ScenarioId: checkout.Id, Position: 1, Description: "Add item to cart", Status: constant.StepStatusPassed, CreatedAt: base},
		{Id: uuid.New(), ScenarioId: search.Id, Position: 1, Description: "Open search page", Status: constant.StepStatusPassed, CreatedAt: base},
		{Id: uuid.New(), ScenarioId: search.Id, Position: 2, Description: "Search for 'laptop'", Status: constant.StepStatusFailed, CreatedAt: base},
	}
	for _, st := range steps {
		require.NoError(t, store.StepRepository().Create(ctx, st))
	}

	defects := []*entity.Defect{
		{Id: uuid.New(), StepId: loginSubmit.Id, Description: "Submit button stays disabled on Firefox", Status: constant.DefectStatusOpen, CreatedAt: base.Add(time.Minute)},
		{Id: uuid.New(), StepId: loginSubmit.Id, Description: "Session cookie not set over HTTP/2", Status: constant.DefectStatusOpen, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, d := range defects {
		require.NoError(t, store.DefectRepository().Create(ctx, d))
	}

	// Proof on the first two Login steps only; everything else stays unproven.
	for _, st := range steps[:2] {
		require.NoError(t, store.ProofFileRepository().Create(ctx, &entity.ProofFile{
			Id: uuid.New(), StepId: st.Id,
			StoredFilename: uuid.New().String() + ".png", ContentType: "image/png", CreatedAt: base,
		}))
	}
	return store
}

func TestRetrieveListScenariosOrdered(t *testing.T) {
	r := NewRetriever(seedStore(t))

	bundle, err := r.Retrieve(context.Background(), intent.KindListScenarios)
	require.NoError(t, err)
	require.Equal(t, 3, bundle.Len())

	titles := make([]string, 0, 3)
	for _, row := range bundle.Rows {
		titles = append(titles, row.(ScenarioRow).Title)
	}
	assert.Equal(t, []string{"Login", "Checkout", "Search"}, titles)
}

func TestRetrieveListScenariosEmptyStore(t *testing.T) {
	r := NewRetriever(memory.NewRecordStore())

	bundle, err := r.Retrieve(context.Background(), intent.KindListScenarios)
	require.NoError(t, err)
	assert.True(t, bundle.IsEmpty())
	assert.Equal(t, intent.KindListScenarios, bundle.Kind)
}

func TestRetrieveMostDefectsScenario(t *testing.T) {
	r := NewRetriever(seedStore(t))

	bundle, err := r.Retrieve(context.Background(), intent.KindMostDefectsScenario)
	require.NoError(t, err)
	require.Equal(t, 1, bundle.Len())

	row := bundle.Rows[0].(DefectCountRow)
	assert.Equal(t, "Login", row.Scenario)
	assert.Equal(t, int64(2), row.DefectCount)
}

// With scenarios but no defects the earliest scenario wins with a zero count.
func TestRetrieveMostDefectsScenarioNoDefects(t *testing.T) {
	store := memory.NewRecordStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.ScenarioRepository().Create(ctx, &entity.Scenario{Id: uuid.New(), Title: "Checkout", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.ScenarioRepository().Create(ctx, &entity.Scenario{Id: uuid.New(), Title: "Login", CreatedAt: base}))

	bundle, err := NewRetriever(store).Retrieve(ctx, intent.KindMostDefectsScenario)
	require.NoError(t, err)
	require.Equal(t, 1, bundle.Len())

	row := bundle.Rows[0].(DefectCountRow)
	assert.Equal(t, "Login", row.Scenario)
	assert.Equal(t, int64(0), row.DefectCount)
}

func TestRetrieveOpenDefectsOrderedByCreation(t *testing.T) {
	r := NewRetriever(seedStore(t))

	bundle, err := r.Retrieve(context.Background(), intent.KindOpenDefects)
	require.NoError(t, err)
	require.Equal(t, 2, bundle.Len())

	first := bundle.Rows[0].(OpenDefectRow)
	second := bundle.Rows[1].(OpenDefectRow)
	assert.Equal(t, "Submit button stays disabled on Firefox", first.Description)
	assert.Equal(t, "Session cookie not set over HTTP/2", second.Description)
	assert.Equal(t, "Login", first.Scenario)
	assert.Equal(t, 3, first.StepPosition)
}

func TestRetrieveOpenDefectsSkipsClosed(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	require.NoError(t, store.DefectRepository().Create(ctx, &entity.Defect{
		Id: uuid.New(), StepId: uuid.New(),
		Description: "Fixed long ago", Status: constant.DefectStatusClosed,
		CreatedAt: time.Now(),
	}))

	bundle, err := NewRetriever(store).Retrieve(ctx, intent.KindOpenDefects)
	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Len())
}

func TestRetrieveFailedStepsOrdering(t *testing.T) {
	r := NewRetriever(seedStore(t))

	bundle, err := r.Retrieve(context.Background(), intent.KindFailedSteps)
	require.NoError(t, err)
	require.Equal(t, 2, bundle.Len())

	// Ordered by scenario title, then position.
	first := bundle.Rows[0].(FailedStepRow)
	second := bundle.Rows[1].(FailedStepRow)
	assert.Equal(t, "Login", first.Scenario)
	assert.Equal(t, 3, first.Position)
	assert.Equal(t, "Search", second.Scenario)
	assert.Equal(t, 2, second.Position)
}

func TestRetrieveNoProofSteps(t *testing.T) {
	r := NewRetriever(seedStore(t))

	bundle, err := r.Retrieve(context.Background(), intent.KindNoProofSteps)
	require.NoError(t, err)
	require.Equal(t, 4, bundle.Len())

	first := bundle.Rows[0].(UnprovenStepRow)
	assert.Equal(t, "Checkout", first.Scenario)
	assert.Equal(t, 1, first.Position)
}

func TestRetrieveUnknownSkipsStore(t *testing.T) {
	// A factory that fails on any access proves the unknown path never
	// touches the store.
	r := NewRetriever(&failingStore{err: errors.New("connection refused")})

	bundle, err := r.Retrieve(context.Background(), intent.KindUnknown)
	require.NoError(t, err)
	assert.True(t, bundle.IsEmpty())
	assert.Equal(t, intent.KindUnknown, bundle.Kind)
}

func TestRetrieveWrapsStoreFailures(t *testing.T) {
	r := NewRetriever(&failingStore{err: errors.New("connection refused")})

	kinds := []intent.Kind{
		intent.KindListScenarios,
		intent.KindMostDefectsScenario,
		intent.KindOpenDefects,
		intent.KindFailedSteps,
		intent.KindNoProofSteps,
	}
	for _, kind := range kinds {
		bundle, err := r.Retrieve(context.Background(), kind)
		require.Error(t, err, "kind: %s", kind)
		assert.Nil(t, bundle)
		assert.True(t, errors.Is(err, ErrStoreUnavailable), "kind: %s", kind)
		assert.Contains(t, err.Error(), "connection refused")
	}
}

// failingStore satisfies the factory and unit-of-work contracts while every
// repository call fails with the configured error.
type failingStore struct {
	err error
}

func (s *failingStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return s
}

func (s *failingStore) ProjectRepository() contract.ProjectRepository {
	return failingProjects{err: s.err}
}

func (s *failingStore) ScenarioRepository() contract.ScenarioRepository {
	return failingScenarios{err: s.err}
}

func (s *failingStore) StepRepository() contract.StepRepository {
	return failingSteps{err: s.err}
}

func (s *failingStore) DefectRepository() contract.DefectRepository {
	return failingDefects{err: s.err}
}

func (s *failingStore) ProofFileRepository() contract.ProofFileRepository {
	return failingProofs{err: s.err}
}

type failingProjects struct{ err error }

func (r failingProjects) Create(ctx context.Context, project *entity.Project) error {
	return r.err
}

func (r failingProjects) FindAll(ctx context.Context) ([]*entity.Project, error) {
	return nil, r.err
}

func (r failingProjects) Count(ctx context.Context) (int64, error) {
	return 0, r.err
}

type failingScenarios struct{ err error }

func (r failingScenarios) Create(ctx context.Context, scenario *entity.Scenario) error {
	return r.err
}

func (r failingScenarios) FindAllOrdered(ctx context.Context) ([]*entity.Scenario, error) {
	return nil, r.err
}

func (r failingScenarios) FindMostDefective(ctx context.Context) (*contract.ScenarioDefectCount, error) {
	return nil, r.err
}

func (r failingScenarios) Count(ctx context.Context) (int64, error) {
	return 0, r.err
}

type failingSteps struct{ err error }

func (r failingSteps) Create(ctx context.Context, step *entity.Step) error {
	return r.err
}

func (r failingSteps) FindByStatusWithScenario(ctx context.Context, status string) ([]*contract.StepWithScenario, error) {
	return nil, r.err
}

func (r failingSteps) FindWithoutProof(ctx context.Context) ([]*contract.StepWithScenario, error) {
	return nil, r.err
}

func (r failingSteps) Count(ctx context.Context) (int64, error) {
	return 0, r.err
}

type failingDefects struct{ err error }

func (r failingDefects) Create(ctx context.Context, defect *entity.Defect) error {
	return r.err
}

func (r failingDefects) FindByStatusWithContext(ctx context.Context, status string) ([]*contract.DefectWithContext, error) {
	return nil, r.err
}

func (r failingDefects) Count(ctx context.Context) (int64, error) {
	return 0, r.err
}

type failingProofs struct{ err error }

func (r failingProofs) Create(ctx context.Context, proof *entity.ProofFile) error {
	return r.err
}

func (r failingProofs) Count(ctx context.Context) (int64, error) {
	return 0, r.err
}
