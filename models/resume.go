package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ResumeFilename is the fixed store-facing name; repeated uploads always
	// replace the same underlying media object.
	ResumeFilename = "resume.pdf"

	ResumeContentType = "application/pdf"

	// MaxResumeSize is 10 MiB.
	MaxResumeSize = 10 * 1024 * 1024
)

// Resume records the metadata of one uploaded resume file. At most one row is
// active at a time ("latest upload wins"); older rows stay behind inactive.
type Resume struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Filename     string    `json:"filename" gorm:"type:text;not null"`
	OriginalName string    `json:"originalName" gorm:"type:text;not null"`
	MediaURL     string    `json:"url" gorm:"type:text;not null"`
	MediaKey     string    `json:"publicId" gorm:"type:text;not null"`
	FileSize     int64     `json:"fileSize" gorm:"not null"`
	UploadedAt   time.Time `json:"uploadedAt" gorm:"index"`
	IsActive     bool      `json:"isActive"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.UploadedAt.IsZero() {
		r.UploadedAt = time.Now().UTC()
	}
	return nil
}
