package models

import (
	"time"
)

// DesignRecord represents one completed design deliverable filed against a PO.
// DesignerName is deliberately a denormalized string rather than a foreign key
// to the designers table, so historical records stay stable when the roster
// changes.
type DesignRecord struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	DesignerName            string    `gorm:"not null" json:"designer_name"`
	ReferenceDesignLocation string    `json:"reference_design_location"`
	DesignLocation          string    `gorm:"not null" json:"design_location"`
	DesignReleaseDate       time.Time `gorm:"type:date;not null" json:"design_release_date"`
	POID                    uint      `gorm:"not null;index" json:"po_id"` // foreign key to po_records table
	PORecord                PORecord  `gorm:"foreignKey:POID;constraint:OnDelete:RESTRICT" json:"-"` // parent PO, not serialized with the record

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the DesignRecord model
func (DesignRecord) TableName() string {
	return "design_records"
}
