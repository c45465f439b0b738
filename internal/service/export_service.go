package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edugest/edugest-api/internal/models"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
	"github.com/edugest/edugest-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered listing ready to be served as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders resource listings as CSV or PDF documents.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService; nil renderers select the defaults.
func NewExportService(csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Render converts records of schema into the requested format.
func (s *ExportService) Render(schema models.Schema, records interface{}, format export.Format) (*ExportFile, error) {
	data, err := export.FromRecords(schema.Headers(), records)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to prepare export")
	}

	var payload []byte
	switch format {
	case export.FormatCSV:
		payload, err = s.csv.Render(data)
	case export.FormatPDF:
		payload, err = s.pdf.Render(data, schema.Title)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("formato de exportação não suportado: %s", format))
	}
	if err != nil {
		s.logger.Error("render export failed", zap.String("table", schema.Table), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", schema.Table, s.now().Format("20060102-150405"), format),
		ContentType: format.ContentType(),
		Payload:     payload,
	}, nil
}
