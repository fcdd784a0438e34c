package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"testdesk-be/internal/constant"
	"testdesk-be/internal/entity"
	"testdesk-be/internal/repository/unitofwork"
	"testdesk-be/pkg/ask/intent"
	"testdesk-be/pkg/ask/retrieval"
	"testdesk-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.ScenarioRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := uow.ProjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Check Defect Repository", func(t *testing.T) {
		count, err := uow.DefectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Defect count: %d", count)
	})

	t.Run("Retrieval Queries Over Seeded Records", func(t *testing.T) {
		ctx := context.Background()

		project := &entity.Project{
			Id:        uuid.New(),
			Name:      "Integration Project " + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		err := uow.ProjectRepository().Create(ctx, project)
		assert.NoError(t, err)

		scenario := &entity.Scenario{
			Id:        uuid.New(),
			ProjectId: project.Id,
			Title:     "Integration Scenario " + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		err = uow.ScenarioRepository().Create(ctx, scenario)
		assert.NoError(t, err)

		step := &entity.Step{
			Id:          uuid.New(),
			ScenarioId:  scenario.Id,
			Position:    1,
			Description: "Integration step",
			Status:      constant.StepStatusFailed,
			CreatedAt:   time.Now(),
		}
		err = uow.StepRepository().Create(ctx, step)
		assert.NoError(t, err)

		err = uow.DefectRepository().Create(ctx, &entity.Defect{
			Id:          uuid.New(),
			StepId:      step.Id,
			Description: "Integration defect",
			Status:      constant.DefectStatusOpen,
			CreatedAt:   time.Now(),
		})
		assert.NoError(t, err)

		// Every retrieval query must run against the real schema.
		r := retrieval.NewRetriever(uowFactory)
		for _, kind := range []intent.Kind{
			intent.KindListScenarios,
			intent.KindMostDefectsScenario,
			intent.KindOpenDefects,
			intent.KindFailedSteps,
			intent.KindNoProofSteps,
		} {
			bundle, err := r.Retrieve(ctx, kind)
			assert.NoError(t, err, "kind: %s", kind)
			assert.NotNil(t, bundle)
			t.Logf("%s returned %d rows", kind, bundle.Len())
		}
	})
}
