package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/PawanYadav007s/Design-Records-APP/config"
	"github.com/PawanYadav007s/Design-Records-APP/models"
	"github.com/PawanYadav007s/Design-Records-APP/utils"
)

// Exporter regenerates the spreadsheet snapshot from the current store
// contents. Implementations must replace the previous snapshot atomically.
type Exporter interface {
	ExportSnapshot() error
}

// SnapshotFileName is the fixed name of the exported workbook inside the
// configured backup folder.
const SnapshotFileName = "design_records.xlsx"

const snapshotSheet = "Design Records"

// SnapshotColumns is the exact, ordered header row of the exported sheet
var SnapshotColumns = []string{
	"PO Number",
	"Quotation Number",
	"PO Date",
	"Client Name",
	"Project Name",
	"Designer Name",
	"Design Location",
	"Reference Design Location",
	"Design Release Date",
}

// ExcelExporter writes the DesignRecord-joined-to-PORecord snapshot as an
// Excel workbook at the location from the settings document.
type ExcelExporter struct {
	db  *gorm.DB
	cfg *config.Config
}

var exporterInstance Exporter

// InitExporter initializes the global exporter used after every mutation
func InitExporter(db *gorm.DB, cfg *config.Config) Exporter {
	exporterInstance = NewExcelExporter(db, cfg)
	return exporterInstance
}

// GetExporter returns the initialized exporter instance
func GetExporter() Exporter {
	return exporterInstance
}

// SetExporter sets the exporter instance (primarily for testing)
func SetExporter(e Exporter) {
	exporterInstance = e
}

// NewExcelExporter creates an exporter over the given database and settings
func NewExcelExporter(db *gorm.DB, cfg *config.Config) *ExcelExporter {
	return &ExcelExporter{db: db, cfg: cfg}
}

// TargetPath returns the full path of the snapshot workbook
func (e *ExcelExporter) TargetPath() string {
	return filepath.Join(e.cfg.ExcelSavePath, SnapshotFileName)
}

// ExportSnapshot fully regenerates the snapshot workbook from the current
// store contents. The write goes to a temporary file first and is renamed
// over the target, so a concurrent reader never sees a half-written file.
// Any failure is surfaced as an ExportError.
func (e *ExcelExporter) ExportSnapshot() error {
	rows, err := e.collectRows()
	if err != nil {
		return &models.ExportError{Err: err}
	}
	if err := e.writeWorkbook(rows); err != nil {
		return &models.ExportError{Err: err}
	}
	return nil
}

// collectRows flattens every design record joined to its PO into the ordered
// cell values of one sheet row. A record whose parent PO cannot be resolved
// is skipped with a warning instead of aborting the export.
func (e *ExcelExporter) collectRows() ([][]string, error) {
	var records []models.DesignRecord
	if err := e.db.Preload("PORecord").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read design records: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		if record.PORecord.ID == 0 {
			logrus.WithFields(logrus.Fields{
				"design_record_id": record.ID,
				"po_id":            record.POID,
			}).Warn("Skipping design record with unresolved PO")
			continue
		}
		po := record.PORecord
		rows = append(rows, []string{
			po.PONumber,
			po.QuotationNumber,
			utils.FormatDate(po.PODate),
			po.ClientCompanyName,
			po.ProjectName,
			record.DesignerName,
			record.DesignLocation,
			record.ReferenceDesignLocation,
			utils.FormatDate(record.DesignReleaseDate),
		})
	}
	return rows, nil
}

func (e *ExcelExporter) writeWorkbook(rows [][]string) error {
	if err := os.MkdirAll(e.cfg.ExcelSavePath, 0o755); err != nil {
		return fmt.Errorf("failed to create backup folder: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("failed to close workbook: %v", closeErr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), snapshotSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(snapshotSheet, "A1", &SnapshotColumns); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(snapshotSheet, cell, &row); err != nil {
			return err
		}
	}

	target := e.TargetPath()
	tmp := target + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
