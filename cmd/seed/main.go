package main

import (
	"context"
	"log"
	"time"

	"testdesk-be/internal/config"
	"testdesk-be/internal/constant"
	"testdesk-be/internal/entity"
	"testdesk-be/internal/model"
	"testdesk-be/internal/repository/unitofwork"
	"testdesk-be/pkg/database"

	"github.com/google/uuid"
)

// Seeds the record store with a small demo dataset: three scenarios where
// "Login" carries two open defects, plus a few failed and unproven steps, so
// every supported question has something to answer.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Project{},
		&model.Scenario{},
		&model.Step{},
		&model.Defect{},
		&model.ProofFile{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	base := time.Now().Add(-72 * time.Hour)

	project := &entity.Project{Id: uuid.New(), Name: "Webshop Release 2.4", CreatedAt: base}
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		log.Fatalf("Seed project: %v", err)
	}

	scenarios := []struct {
		title   string
		offset  time.Duration
		steps   []string
		failed  []int // positions marked FAILED
		defects map[int][]string
		proven  []int // positions with a proof file
	}{
		{
			title:  "Login",
			offset: 0,
			steps:  []string{"Open login page", "Enter valid credentials", "Submit form", "Verify dashboard"},
			failed: []int{3},
			defects: map[int][]string{
				3: {"Submit button stays disabled on Firefox", "Session cookie not set over HTTP/2"},
			},
			proven: []int{1, 2},
		},
		{
			title:  "Checkout",
			offset: 1 * time.Hour,
			steps:  []string{"Add item to cart", "Open checkout", "Pay with test card"},
			proven: []int{1, 2, 3},
		},
		{
			title:  "Search",
			offset: 2 * time.Hour,
			steps:  []string{"Open search page", "Search for 'laptop'", "Verify result count"},
			failed: []int{2},
			proven: []int{1},
		},
	}

	for _, sc := range scenarios {
		scenario := &entity.Scenario{
			Id:        uuid.New(),
			ProjectId: project.Id,
			Title:     sc.title,
			CreatedAt: base.Add(sc.offset),
		}
		if err := uow.ScenarioRepository().Create(ctx, scenario); err != nil {
			log.Fatalf("Seed scenario %s: %v", sc.title, err)
		}

		failed := make(map[int]bool)
		for _, p := range sc.failed {
			failed[p] = true
		}
		proven := make(map[int]bool)
		for _, p := range sc.proven {
			proven[p] = true
		}

		for i, description := range sc.steps {
			position := i + 1
			status := constant.StepStatusPassed
			if failed[position] {
				status = constant.StepStatusFailed
			}
			step := &entity.Step{
				Id:          uuid.New(),
				ScenarioId:  scenario.Id,
				Position:    position,
				Description: description,
				Status:      status,
				CreatedAt:   scenario.CreatedAt,
			}
			if err := uow.StepRepository().Create(ctx, step); err != nil {
				log.Fatalf("Seed step %d of %s: %v", position, sc.title, err)
			}

			for j, text := range sc.defects[position] {
				defect := &entity.Defect{
					Id:          uuid.New(),
					StepId:      step.Id,
					Description: text,
					Status:      constant.DefectStatusOpen,
					CreatedAt:   scenario.CreatedAt.Add(time.Duration(j+1) * time.Minute),
				}
				if err := uow.DefectRepository().Create(ctx, defect); err != nil {
					log.Fatalf("Seed defect on %s: %v", sc.title, err)
				}
			}

			if proven[position] {
				proof := &entity.ProofFile{
					Id:             uuid.New(),
					StepId:         step.Id,
					StoredFilename: uuid.New().String() + ".png",
					ContentType:    "image/png",
					CreatedAt:      scenario.CreatedAt,
				}
				if err := uow.ProofFileRepository().Create(ctx, proof); err != nil {
					log.Fatalf("Seed proof on %s: %v", sc.title, err)
				}
			}
		}
	}

	log.Println("✅ Demo data seeded")
}
