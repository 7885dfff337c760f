package services

import (
	"context"

	"github.com/wedmac/wedmac-admin/internal/client/api"
	"github.com/wedmac/wedmac-admin/internal/client/importer"
	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/common"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

// LeadService is the bulk import pipeline: parse a spreadsheet, submit the
// full batch, export the per-row report.
type LeadService interface {
	ParseFile(path string) ([]models.Lead, error)
	Submit(ctx context.Context, leads []models.Lead) (*models.BulkCreateResult, error)
	ExportReport(dir string, results []models.ImportResult) (string, error)
}

type leadService struct {
	client api.API
	log    logging.Logger
}

func NewLeadService(client api.API, log logging.Logger) LeadService {
	return &leadService{client: client, log: log.With("component", "leads")}
}

func (s *leadService) ParseFile(path string) ([]models.Lead, error) {
	return importer.ParseFile(path)
}

// Submit sends every parsed row, not the display-capped preview. Per-row
// outcomes come back index-aligned with the submitted list.
func (s *leadService) Submit(ctx context.Context, leads []models.Lead) (*models.BulkCreateResult, error) {
	if len(leads) == 0 {
		return nil, common.ErrNothingToSubmit
	}

	out, err := s.client.CreateLeads(ctx, leads)
	if err != nil {
		return nil, mapAuthError(err)
	}

	s.log.Info(ctx, "batch submitted", "rows", len(leads), "results", len(out.Results))
	return out, nil
}

func (s *leadService) ExportReport(dir string, results []models.ImportResult) (string, error) {
	return importer.ExportReport(dir, results)
}
