package models

import (
	"time"
)

// Designer is a roster entry used to populate selection lists when filing a
// design record. Its lifecycle is independent of PO and design records.
type Designer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Designer model
func (Designer) TableName() string {
	return "designers"
}
