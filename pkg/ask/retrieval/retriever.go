package retrieval

import (
	"context"
	"errors"
	"fmt"

	"testdesk-be/internal/constant"
	"testdesk-be/internal/repository/unitofwork"
	"testdesk-be/pkg/ask/intent"
)

// ErrStoreUnavailable wraps any record-store failure. It is the only error
// the question-answering core surfaces to callers; retry policy lives with
// the store's own client.
var ErrStoreUnavailable = errors.New("record store unavailable")

// Retriever executes the structured query bound to a detected intent against
// the record store. Every query is read-only and deterministic over the
// store's current snapshot.
type Retriever struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRetriever(uowFactory unitofwork.RepositoryFactory) *Retriever {
	return &Retriever{
		uowFactory: uowFactory,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, kind intent.Kind) (*Bundle, error) {
	switch kind {
	case intent.KindListScenarios:
		return r.listScenarios(ctx)
	case intent.KindMostDefectsScenario:
		return r.mostDefectsScenario(ctx)
	case intent.KindOpenDefects:
		return r.openDefects(ctx)
	case intent.KindFailedSteps:
		return r.failedSteps(ctx)
	case intent.KindNoProofSteps:
		return r.noProofSteps(ctx)
	default:
		return EmptyBundle(intent.KindUnknown), nil
	}
}

func (r *Retriever) listScenarios(ctx context.Context) (*Bundle, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	scenarios, err := uow.ScenarioRepository().FindAllOrdered(ctx)
	if err != nil {
		return nil, storeErr("list scenarios", err)
	}
	bundle := EmptyBundle(intent.KindListScenarios)
	for _, sc := range scenarios {
		bundle.Rows = append(bundle.Rows, ScenarioRow{
			Title:     sc.Title,
			CreatedAt: sc.CreatedAt,
		})
	}
	return bundle, nil
}

func (r *Retriever) mostDefectsScenario(ctx context.Context) (*Bundle, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	row, err := uow.ScenarioRepository().FindMostDefective(ctx)
	if err != nil {
		return nil, storeErr("most defective scenario", err)
	}
	bundle := EmptyBundle(intent.KindMostDefectsScenario)
	if row != nil {
		bundle.Rows = append(bundle.Rows, DefectCountRow{
			Scenario:    row.ScenarioTitle,
			DefectCount: row.DefectCount,
		})
	}
	return bundle, nil
}

func (r *Retriever) openDefects(ctx context.Context) (*Bundle, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.DefectRepository().FindByStatusWithContext(ctx, constant.DefectStatusOpen)
	if err != nil {
		return nil, storeErr("open defects", err)
	}
	bundle := EmptyBundle(intent.KindOpenDefects)
	for _, row := range rows {
		bundle.Rows = append(bundle.Rows, OpenDefectRow{
			Scenario:     row.ScenarioTitle,
			StepPosition: row.StepPosition,
			Description:  row.Description,
			CreatedAt:    row.CreatedAt,
		})
	}
	return bundle, nil
}

func (r *Retriever) failedSteps(ctx context.Context) (*Bundle, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.StepRepository().FindByStatusWithScenario(ctx, constant.StepStatusFailed)
	if err != nil {
		return nil, storeErr("failed steps", err)
	}
	bundle := EmptyBundle(intent.KindFailedSteps)
	for _, row := range rows {
		bundle.Rows = append(bundle.Rows, FailedStepRow{
			Scenario:    row.ScenarioTitle,
			Position:    row.Position,
			Description: row.Description,
		})
	}
	return bundle, nil
}

func (r *Retriever) noProofSteps(ctx context.Context) (*Bundle, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.StepRepository().FindWithoutProof(ctx)
	if err != nil {
		return nil, storeErr("steps without proof", err)
	}
	bundle := EmptyBundle(intent.KindNoProofSteps)
	for _, row := range rows {
		bundle.Rows = append(bundle.Rows, UnprovenStepRow{
			Scenario:    row.ScenarioTitle,
			Position:    row.Position,
			Description: row.Description,
			Status:      row.Status,
		})
	}
	return bundle, nil
}

func storeErr(query string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, query, err)
}
