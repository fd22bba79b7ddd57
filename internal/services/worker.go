package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-portfolio-generator/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(portfolioID uuid.UUID)
}

type worker struct {
	portfolioRepo    repositories.PortfolioRepository
	portfolioService PortfolioService
	jobQueue         chan uuid.UUID
	concurrency      int
	wg               sync.WaitGroup
	stopChan         chan struct{}
}

func NewWorker(
	portfolioRepo repositories.PortfolioRepository,
	portfolioService PortfolioService,
	concurrency int,
) Worker {
	return &worker{
		portfolioRepo:    portfolioRepo,
		portfolioService: portfolioService,
		jobQueue:         make(chan uuid.UUID, 100),
		concurrency:      concurrency,
		stopChan:         make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Re-enqueue jobs that were queued before a restart
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(portfolioID uuid.UUID) {
	select {
	case w.jobQueue <- portfolioID:
		log.Printf("📥 Job %s enqueued\n", portfolioID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue job %s\n", portfolioID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case portfolioID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing job %s\n", workerID, portfolioID)
			if err := w.portfolioService.ProcessPortfolio(ctx, portfolioID); err != nil {
				log.Printf("❌ Worker #%d failed to process job %s: %v\n", workerID, portfolioID, err)
			} else {
				log.Printf("✅ Worker #%d completed job %s\n", workerID, portfolioID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending jobs poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending jobs poller stopped")
			return
		case <-ticker.C:
			pendingJobs, err := w.portfolioRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending jobs: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending jobs\n", len(pendingJobs))
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
