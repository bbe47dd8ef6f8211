package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AboutSection is one block of the about page. SectionKey is a free-form grouping label.
type AboutSection struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	SectionKey   string    `json:"section_key" db:"section_key" gorm:"type:text"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content      string    `json:"content" db:"content" gorm:"type:text"`
	DisplayOrder *int      `json:"display_order" db:"display_order" gorm:"type:integer"`
}

func (AboutSection) TableName() string { return "about_sections" }

func (a *AboutSection) BeforeCreate(tx *gorm.DB) error {
	a.ID = uuid.New()
	return nil
}
