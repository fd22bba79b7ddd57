package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ai-portfolio-generator/internal/models"
)

type PortfolioRepository interface {
	Create(portfolio *models.Portfolio) error
	FindByID(id uuid.UUID) (*models.Portfolio, error)
	FindByUserID(userID uuid.UUID) ([]models.Portfolio, error)
	UpdateStatus(id uuid.UUID, status models.PortfolioStatus) error
	UpdateResult(id uuid.UUID, htmlContent string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	SetFavorite(id uuid.UUID, favorite bool) error
	FindPendingJobs(limit int) ([]models.Portfolio, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(portfolio *models.Portfolio) error {
	if err := r.db.Create(portfolio).Error; err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (r *portfolioRepository) FindByID(id uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.Where("id = ?", id).First(&portfolio).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("portfolio not found")
		}
		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) FindByUserID(userID uuid.UUID) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&portfolios).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return portfolios, nil
}

func (r *portfolioRepository) UpdateStatus(id uuid.UUID, status models.PortfolioStatus) error {
	result := r.db.Model(&models.Portfolio{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("portfolio not found")
	}

	return nil
}

func (r *portfolioRepository) UpdateResult(id uuid.UUID, htmlContent string) error {
	result := r.db.Model(&models.Portfolio{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.StatusCompleted,
			"html_content": htmlContent,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("portfolio not found")
	}

	return nil
}

func (r *portfolioRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Portfolio{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("portfolio not found")
	}

	return nil
}

func (r *portfolioRepository) SetFavorite(id uuid.UUID, favorite bool) error {
	result := r.db.Model(&models.Portfolio{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_favorite": favorite,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update favorite flag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("portfolio not found")
	}

	return nil
}

func (r *portfolioRepository) FindPendingJobs(limit int) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&portfolios).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return portfolios, nil
}
