package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project categories selectable on the dashboard. Defined once here so the
// validator and the API share a single source of truth.
var Categories = []string{
	"Web Development",
	"Mobile Development",
	"AI/ML",
	"Blockchain",
	"Desktop Application",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MaxProjectImages caps imageUrls at the application layer; the column itself
// is an unconstrained JSON list.
const MaxProjectImages = 3

// Project represents a portfolio project entry
type Project struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string         `json:"title" gorm:"type:text;not null" validate:"required,max=100"`
	Description  string         `json:"description" gorm:"type:text;not null" validate:"required,max=1000"`
	Technologies TechnologyList `json:"technologies" gorm:"serializer:json;type:text" validate:"required,min=1,dive,required"`
	GithubURL    string         `json:"githubUrl,omitempty" gorm:"type:text" validate:"omitempty,http_url"`
	LiveURL      string         `json:"liveUrl,omitempty" gorm:"type:text" validate:"omitempty,http_url"`
	ImageURLs    ImageList      `json:"imageUrls" gorm:"serializer:json;type:text" validate:"max=3"`
	Category     string         `json:"category" gorm:"type:text;not null;index" validate:"required,projectcategory"`
	Date         string         `json:"date" gorm:"type:text;not null" validate:"required,datetime=2006-01-02"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TechnologyList is an ordered list of technology names. It accepts JSON
// input either as an array of strings or as a single comma-separated string;
// both forms are trimmed and stripped of empty segments.
type TechnologyList []string

func (t *TechnologyList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = SplitTechnologies(asString)
		return nil
	}

	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err != nil {
		return err
	}
	*t = normalizeTechnologies(asSlice)
	return nil
}

// SplitTechnologies turns a comma-separated string into a clean list:
// "React, , Node.js," -> ["React", "Node.js"]
func SplitTechnologies(s string) TechnologyList {
	return normalizeTechnologies(strings.Split(s, ","))
}

func normalizeTechnologies(raw []string) TechnologyList {
	out := make(TechnologyList, 0, len(raw))
	for _, tech := range raw {
		tech = strings.TrimSpace(tech)
		if tech != "" {
			out = append(out, tech)
		}
	}
	return out
}

// ImageList holds Media Store URLs in display order; the first entry is the
// cover image.
type ImageList []string
