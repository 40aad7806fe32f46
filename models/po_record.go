package models

import (
	"time"
)

// DesignStatus tracks whether design work has been filed against a PO
type DesignStatus string

const (
	StatusPending   DesignStatus = "pending"
	StatusCompleted DesignStatus = "completed"
)

// PORecord represents one purchase order tracked by the system
type PORecord struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	PONumber          string       `gorm:"uniqueIndex;not null" json:"po_number"` // natural business key
	QuotationNumber   string       `json:"quotation_number"`
	PODate            time.Time    `gorm:"type:date;not null" json:"po_date"`
	ClientCompanyName string       `gorm:"not null" json:"client_company_name"`
	ProjectName       string       `gorm:"not null" json:"project_name"`
	DesignStatus      DesignStatus `gorm:"not null;default:'pending'" json:"design_status"` // "pending" or "completed"

	DesignRecords []DesignRecord `gorm:"foreignKey:POID" json:"design_records,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the PORecord model
func (PORecord) TableName() string {
	return "po_records"
}
