// Package reports genera la versión descargable (PDF) del resumen de costos
// del dashboard.
package reports

import (
	"fmt"
	"time"

	"github.com/SocketStudioec/ITAssetManager/internal/application/analytics"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// ReportPDFGenerator puerto de generación del PDF (implementación en
// infrastructure/pdf con Maroto).
type ReportPDFGenerator interface {
	GenerateCostReport(company *entity.Company, summary *dto.DashboardSummaryDTO) ([]byte, error)
}

// PDFUseCase arma el reporte de costos de una empresa y lo convierte a PDF.
type PDFUseCase struct {
	companyRepo repository.CompanyRepository
	dashboard   *analytics.DashboardUseCase
	generator   ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(companyRepo repository.CompanyRepository, dashboard *analytics.DashboardUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{companyRepo: companyRepo, dashboard: dashboard, generator: generator}
}

// GenerateCostReport devuelve los bytes del PDF del resumen de costos.
func (uc *PDFUseCase) GenerateCostReport(companyID string, now time.Time) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := uc.dashboard.GetSummary(companyID, now)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateCostReport(company, summary)
	if err != nil {
		return nil, fmt.Errorf("reporte de costos: %w", err)
	}
	return pdf, nil
}
