package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/PawanYadav007s/Design-Records-APP/models"
	"github.com/PawanYadav007s/Design-Records-APP/utils"
)

// POInput carries the fields for registering a purchase order. Dates cross
// this boundary as ISO YYYY-MM-DD strings.
type POInput struct {
	PONumber          string
	QuotationNumber   string
	PODate            string
	ClientCompanyName string
	ProjectName       string
}

// DesignInput carries the fields for filing a design record against a PO
type DesignInput struct {
	PONumber                string
	DesignerName            string
	ReferenceDesignLocation string
	DesignLocation          string
	DesignReleaseDate       string
}

// DesignUpdate carries a partial update; nil fields are left unchanged
type DesignUpdate struct {
	DesignerName            *string
	ReferenceDesignLocation *string
	DesignLocation          *string
	DesignReleaseDate       *string
}

// JoinedRecord is one design record joined to its parent PO, the row shape
// of the browse, search and export surfaces.
type JoinedRecord struct {
	Design models.DesignRecord `json:"design_record"`
	PO     models.PORecord     `json:"po_record"`
}

// RecordInterface defines the record-keeping core consumed by the HTTP layer.
// Every mutating operation runs in a single transaction and, on commit,
// triggers the snapshot export. An export failure does not unwind the
// committed mutation: the operation's result is returned together with an
// ExportError the caller can report.
type RecordInterface interface {
	CreatePO(input POInput) (*models.PORecord, error)
	DeletePO(poNumber string) error
	CreateDesignRecord(input DesignInput) (*models.DesignRecord, error)
	UpdateDesignRecord(id uint, update DesignUpdate) (*models.DesignRecord, error)
	DeleteDesignRecord(id uint) error
	ListPending() ([]models.PORecord, error)
	ListAll() ([]JoinedRecord, error)
	Search(term string) ([]JoinedRecord, error)
	PendingCount() (int64, error)
	CreateDesigner(name string) (*models.Designer, error)
	RenameDesigner(id uint, newName string) (*models.Designer, error)
	DeleteDesigner(id uint) error
	ListDesigners() ([]models.Designer, error)
}

// RecordService implements RecordInterface over a gorm database
type RecordService struct {
	db       *gorm.DB
	exporter Exporter
}

var recordServiceInstance RecordInterface

// InitRecordService initializes the global record service
func InitRecordService(db *gorm.DB, exporter Exporter) RecordInterface {
	recordServiceInstance = NewRecordService(db, exporter)
	return recordServiceInstance
}

// GetRecordService returns the initialized record service instance
func GetRecordService() RecordInterface {
	return recordServiceInstance
}

// SetRecordService sets the record service instance (primarily for testing)
func SetRecordService(s RecordInterface) {
	recordServiceInstance = s
}

// NewRecordService creates a record service over the given database and exporter
func NewRecordService(db *gorm.DB, exporter Exporter) *RecordService {
	return &RecordService{db: db, exporter: exporter}
}

// CreatePO registers a new purchase order with design_status "pending".
// Fails with DuplicateKeyError when the po_number is already taken and with
// ValidationError before any write when a required field is missing.
func (s *RecordService) CreatePO(input POInput) (*models.PORecord, error) {
	input.PONumber = strings.TrimSpace(input.PONumber)
	if input.PONumber == "" {
		return nil, &models.ValidationError{Field: "po_number", Reason: "is required"}
	}
	if strings.TrimSpace(input.ClientCompanyName) == "" {
		return nil, &models.ValidationError{Field: "client_company_name", Reason: "is required"}
	}
	if strings.TrimSpace(input.ProjectName) == "" {
		return nil, &models.ValidationError{Field: "project_name", Reason: "is required"}
	}
	poDate, err := utils.ParseDate("po_date", input.PODate)
	if err != nil {
		return nil, err
	}

	po := models.PORecord{
		PONumber:          input.PONumber,
		QuotationNumber:   input.QuotationNumber,
		PODate:            poDate,
		ClientCompanyName: input.ClientCompanyName,
		ProjectName:       input.ProjectName,
		DesignStatus:      models.StatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PORecord{}).Where("po_number = ?", input.PONumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &models.DuplicateKeyError{Field: "po_number", Value: input.PONumber}
		}
		if err := tx.Create(&po).Error; err != nil {
			return translateUniqueViolation(err, "po_number", input.PONumber)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &po, s.triggerExport()
}

// DeletePO removes a purchase order as an explicit administrative action.
// A PO that still owns design records is refused with ConflictError so
// history is never orphaned silently.
func (s *RecordService) DeletePO(poNumber string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var po models.PORecord
		if err := tx.Where("po_number = ?", poNumber).First(&po).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "PO", Key: poNumber}
			}
			return err
		}
		var owned int64
		if err := tx.Model(&models.DesignRecord{}).Where("po_id = ?", po.ID).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return &models.ConflictError{
				Message: fmt.Sprintf("PO %q still has %d design record(s); delete those first", poNumber, owned),
			}
		}
		return tx.Delete(&po).Error
	})
	if err != nil {
		return err
	}
	return s.triggerExport()
}

// CreateDesignRecord files completed design work against the PO identified
// by po_number. The record insert and the parent PO's pending -> completed
// status flip commit in the same transaction or not at all. If a concurrent
// writer completed the PO between the read and the guarded update, the whole
// operation fails with ConflictError. Filing against an already-completed PO
// is accepted and leaves the status untouched.
func (s *RecordService) CreateDesignRecord(input DesignInput) (*models.DesignRecord, error) {
	if strings.TrimSpace(input.DesignerName) == "" {
		return nil, &models.ValidationError{Field: "designer_name", Reason: "is required"}
	}
	if strings.TrimSpace(input.DesignLocation) == "" {
		return nil, &models.ValidationError{Field: "design_location", Reason: "is required"}
	}
	releaseDate, err := utils.ParseDate("design_release_date", input.DesignReleaseDate)
	if err != nil {
		return nil, err
	}

	var record models.DesignRecord
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var po models.PORecord
		if err := tx.Where("po_number = ?", input.PONumber).First(&po).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "PO", Key: input.PONumber}
			}
			return err
		}

		record = models.DesignRecord{
			DesignerName:            input.DesignerName,
			ReferenceDesignLocation: input.ReferenceDesignLocation,
			DesignLocation:          input.DesignLocation,
			DesignReleaseDate:       releaseDate,
			POID:                    po.ID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if po.DesignStatus == models.StatusPending {
			// Guarded update: zero rows affected means another writer
			// completed the PO after our read.
			result := tx.Model(&models.PORecord{}).
				Where("id = ? AND design_status = ?", po.ID, models.StatusPending).
				Update("design_status", models.StatusCompleted)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &models.ConflictError{
					Message: fmt.Sprintf("PO %q changed status while filing the design record", input.PONumber),
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("PORecord").First(&record, record.ID).Error; err != nil {
		return nil, err
	}
	return &record, s.triggerExport()
}

// UpdateDesignRecord applies a partial correction to an existing design
// record. The parent PO's status is never touched.
func (s *RecordService) UpdateDesignRecord(id uint, update DesignUpdate) (*models.DesignRecord, error) {
	if update.DesignerName != nil && strings.TrimSpace(*update.DesignerName) == "" {
		return nil, &models.ValidationError{Field: "designer_name", Reason: "cannot be blank"}
	}
	if update.DesignLocation != nil && strings.TrimSpace(*update.DesignLocation) == "" {
		return nil, &models.ValidationError{Field: "design_location", Reason: "cannot be blank"}
	}

	var record models.DesignRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "design record", Key: fmt.Sprint(id)}
			}
			return err
		}

		if update.DesignerName != nil {
			record.DesignerName = *update.DesignerName
		}
		if update.ReferenceDesignLocation != nil {
			record.ReferenceDesignLocation = *update.ReferenceDesignLocation
		}
		if update.DesignLocation != nil {
			record.DesignLocation = *update.DesignLocation
		}
		if update.DesignReleaseDate != nil {
			releaseDate, err := utils.ParseDate("design_release_date", *update.DesignReleaseDate)
			if err != nil {
				return err
			}
			record.DesignReleaseDate = releaseDate
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("PORecord").First(&record, record.ID).Error; err != nil {
		return nil, err
	}
	return &record, s.triggerExport()
}

// DeleteDesignRecord removes a design record. What happens to the parent
// PO's status is decided by statusAfterDelete.
func (s *RecordService) DeleteDesignRecord(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var record models.DesignRecord
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "design record", Key: fmt.Sprint(id)}
			}
			return err
		}
		if err := tx.Delete(&record).Error; err != nil {
			return err
		}

		var po models.PORecord
		if err := tx.First(&po, record.POID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if next := statusAfterDelete(po); next != po.DesignStatus {
			return tx.Model(&po).Update("design_status", next).Error
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.triggerExport()
}

// statusAfterDelete is the single place deciding whether removing a design
// record reverts its parent PO's status. Current behavior: the status stays
// as-is, so a completed PO remains completed even when its only design
// record is deleted.
func statusAfterDelete(po models.PORecord) models.DesignStatus {
	return po.DesignStatus
}

// ListPending returns the POs still waiting for design work, ordered by
// po_number for stable selection lists.
func (s *RecordService) ListPending() ([]models.PORecord, error) {
	var pos []models.PORecord
	err := s.db.Where("design_status = ?", models.StatusPending).Order("po_number ASC").Find(&pos).Error
	return pos, err
}

// ListAll returns every design record joined to its PO, most recent first
func (s *RecordService) ListAll() ([]JoinedRecord, error) {
	var records []models.DesignRecord
	err := s.db.Preload("PORecord").Order("id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return joinRecords(records), nil
}

// Search returns the design records whose PO number, project name, client
// name or designer name contains the term, case-insensitively. A blank term
// returns the empty list rather than everything.
func (s *RecordService) Search(term string) ([]JoinedRecord, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []JoinedRecord{}, nil
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var records []models.DesignRecord
	err := s.db.
		Select("design_records.*").
		Joins("JOIN po_records ON po_records.id = design_records.po_id").
		Where("LOWER(po_records.po_number) LIKE ? OR LOWER(po_records.project_name) LIKE ? OR LOWER(po_records.client_company_name) LIKE ? OR LOWER(design_records.designer_name) LIKE ?",
			pattern, pattern, pattern, pattern).
		Preload("PORecord").
		Order("design_records.id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return joinRecords(records), nil
}

// PendingCount returns the dashboard count of POs awaiting design work
func (s *RecordService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.PORecord{}).Where("design_status = ?", models.StatusPending).Count(&count).Error
	return count, err
}

// CreateDesigner adds a roster entry. Names are trimmed before comparing
// and storing; duplicates fail with DuplicateKeyError.
func (s *RecordService) CreateDesigner(name string) (*models.Designer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "is required"}
	}

	designer := models.Designer{Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Designer{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &models.DuplicateKeyError{Field: "name", Value: name}
		}
		if err := tx.Create(&designer).Error; err != nil {
			return translateUniqueViolation(err, "name", name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

// RenameDesigner changes a roster entry's name. Historical design records
// keep the name they were filed with.
func (s *RecordService) RenameDesigner(id uint, newName string) (*models.Designer, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "is required"}
	}

	var designer models.Designer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&designer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "designer", Key: fmt.Sprint(id)}
			}
			return err
		}
		var count int64
		if err := tx.Model(&models.Designer{}).Where("name = ? AND id <> ?", newName, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &models.DuplicateKeyError{Field: "name", Value: newName}
		}
		designer.Name = newName
		return tx.Save(&designer).Error
	})
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

// DeleteDesigner removes a roster entry without touching historical records
func (s *RecordService) DeleteDesigner(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var designer models.Designer
		if err := tx.First(&designer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "designer", Key: fmt.Sprint(id)}
			}
			return err
		}
		return tx.Delete(&designer).Error
	})
}

// ListDesigners returns the roster ordered by name
func (s *RecordService) ListDesigners() ([]models.Designer, error) {
	var designers []models.Designer
	err := s.db.Order("name ASC").Find(&designers).Error
	return designers, err
}

// triggerExport regenerates the snapshot after a committed mutation. The
// caller's write stays committed regardless; a failure comes back as an
// ExportError to report alongside the result.
func (s *RecordService) triggerExport() error {
	if s.exporter == nil {
		return nil
	}
	if err := s.exporter.ExportSnapshot(); err != nil {
		var exportErr *models.ExportError
		if errors.As(err, &exportErr) {
			return err
		}
		return &models.ExportError{Err: err}
	}
	return nil
}

// joinRecords pairs each design record with its preloaded PO, dropping rows
// whose PO did not resolve.
func joinRecords(records []models.DesignRecord) []JoinedRecord {
	joined := make([]JoinedRecord, 0, len(records))
	for _, record := range records {
		if record.PORecord.ID == 0 {
			continue
		}
		joined = append(joined, JoinedRecord{Design: record, PO: record.PORecord})
	}
	return joined
}

// translateUniqueViolation maps a driver-level unique constraint failure,
// reached only when two writers race past the in-transaction existence
// check, to the same DuplicateKeyError the check produces.
func translateUniqueViolation(err error, field, value string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
		return &models.DuplicateKeyError{Field: field, Value: value}
	}
	return err
}
