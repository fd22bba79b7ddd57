package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-portfolio-generator/internal/models"
)

type fakePortfolioService struct {
	processed chan uuid.UUID
}

func (f *fakePortfolioService) ProcessPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	f.processed <- portfolioID
	return nil
}

type fakePortfolioRepo struct{}

func (f *fakePortfolioRepo) Create(*models.Portfolio) error { return nil }
func (f *fakePortfolioRepo) FindByID(uuid.UUID) (*models.Portfolio, error) {
	return nil, nil
}
func (f *fakePortfolioRepo) FindByUserID(uuid.UUID) ([]models.Portfolio, error) {
	return nil, nil
}
func (f *fakePortfolioRepo) UpdateStatus(uuid.UUID, models.PortfolioStatus) error { return nil }
func (f *fakePortfolioRepo) UpdateResult(uuid.UUID, string) error                 { return nil }
func (f *fakePortfolioRepo) UpdateError(uuid.UUID, string) error                  { return nil }
func (f *fakePortfolioRepo) SetFavorite(uuid.UUID, bool) error                    { return nil }
func (f *fakePortfolioRepo) FindPendingJobs(int) ([]models.Portfolio, error) {
	return nil, nil
}

func TestWorkerProcessesEnqueuedJobs(t *testing.T) {
	svc := &fakePortfolioService{processed: make(chan uuid.UUID, 1)}
	w := NewWorker(&fakePortfolioRepo{}, svc, 2)

	w.Start(context.Background())
	defer w.Stop()

	jobID := uuid.New()
	w.EnqueueJob(jobID)

	select {
	case got := <-svc.processed:
		assert.Equal(t, jobID, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed in time")
	}
}
