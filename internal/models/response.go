package models

import "ai-portfolio-generator/internal/resume"

type ExtractResponse struct {
	ResumeID string             `json:"resume_id"`
	FullText string             `json:"full_text"`
	Sections *resume.SectionMap `json:"sections"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Name     string             `json:"name"`
}

type GenerateRequest struct {
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
	Theme            string `json:"theme" validate:"required"`
	ThemePreferences string `json:"theme_preferences"`
	PortfolioName    string `json:"portfolio_name"`
	Email            string `json:"email" validate:"required,email"`
}

type GenerateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PortfolioResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Theme        string  `json:"theme"`
	Status       string  `json:"status"`
	IsFavorite   bool    `json:"is_favorite"`
	HTML         *string `json:"html,omitempty"`
	PreviewURI   *string `json:"preview_uri,omitempty"`
	ZipBase64    *string `json:"zip_base64,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type PortfolioSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Theme      string `json:"theme"`
	Status     string `json:"status"`
	IsFavorite bool   `json:"is_favorite"`
	CreatedAt  string `json:"created_at"`
}
