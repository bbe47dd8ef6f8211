package models

// HeroSection is the fixed key of the singleton hero row.
const HeroSection = "hero"

// HeroContent is the landing page banner.
type HeroContent struct {
	Section       string `json:"section" db:"section" gorm:"type:text;primaryKey"`
	Title         string `json:"title" db:"title" gorm:"type:text"`
	Subtitle      string `json:"subtitle" db:"subtitle" gorm:"type:text"`
	Description   string `json:"description" db:"description" gorm:"type:text"`
	PrimaryButton string `json:"primary_button" db:"primary_button" gorm:"type:text"`
}

func (HeroContent) TableName() string { return "hero_content" }
