package service

import (
	"fmt"

	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/logger"
	"prayer-roster-backend/internal/repository"
)

// ExportFile is a rendered roster ready to be sent as an attachment
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders filtered rosters into downloadable documents
type ExportService struct {
	store    repository.Store
	settings RosterSettings
	log      *logger.Logger
}

var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new export service
func NewExportService(store repository.Store, settings RosterSettings) *ExportService {
	return &ExportService{
		store:    store,
		settings: settings,
		log:      logger.WithComponent("export_service"),
	}
}

// Export renders the slots selected by filter in the given format
func (s *ExportService) Export(format export.Format, filter PeriodFilter) (*ExportFile, error) {
	format, ok := export.ParseFormat(string(format))
	if !ok {
		return nil, apperrors.ErrInvalidExportKind
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	slots, err := s.store.Slots().List(filter.Range())
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, apperrors.ErrNoSlotsToExport
	}

	views, err := loadSlotViews(s.store, slots)
	if err != nil {
		return nil, err
	}

	rows := make([]export.Row, len(views))
	for i, v := range views {
		rows[i] = v.row()
	}

	period := filter.Period()
	doc := &export.Document{
		Title:       export.DefaultTitle,
		Period:      period,
		Rows:        rows,
		GeneratedAt: s.settings.now(),
	}

	data, err := export.Render(format, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	file := &ExportFile{
		Filename:    export.Filename(format, period),
		ContentType: format.ContentType(),
		Data:        data,
	}
	s.log.WithFields(map[string]interface{}{
		"format":   format,
		"slots":    len(rows),
		"filename": file.Filename,
	}).Info("roster exported")
	return file, nil
}
