package services

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
)

type PackagerService interface {
	BuildZip(htmlContent, baseName string) ([]byte, error)
	EncodeDataURI(htmlContent string) string
}

type packagerService struct{}

func NewPackagerService() PackagerService {
	return &packagerService{}
}

const packageReadme = `Portfolio Website
=================

This portfolio website was generated by AI Portfolio Generator.

To view the website, simply open the HTML file in any web browser.
The website is self-contained and does not require any external files or internet connection.

For deployment to services like Netlify or Vercel:
1. Upload the HTML file to your GitHub repository
2. Connect your repository to Netlify/Vercel
3. Follow their deployment instructions

Enjoy your new portfolio website!`

// BuildZip implements PackagerService. The archive holds the portfolio HTML
// and a short README.
func (p *packagerService) BuildZip(htmlContent, baseName string) ([]byte, error) {
	if baseName == "" {
		baseName = "portfolio"
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	htmlFile, err := writer.Create(baseName + ".html")
	if err != nil {
		return nil, fmt.Errorf("failed to create zip entry: %w", err)
	}
	if _, err := htmlFile.Write([]byte(htmlContent)); err != nil {
		return nil, fmt.Errorf("failed to write portfolio html: %w", err)
	}

	readmeFile, err := writer.Create("README.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create zip entry: %w", err)
	}
	if _, err := readmeFile.Write([]byte(packageReadme)); err != nil {
		return nil, fmt.Errorf("failed to write readme: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeDataURI implements PackagerService. The data URI is used for inline
// previews without touching disk.
func (p *packagerService) EncodeDataURI(htmlContent string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(htmlContent))
	return "data:text/html;base64," + encoded
}
