package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lekzzicon/portfolio-backend/models"
)

type ResumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) *ResumeRepo {
	return &ResumeRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ResumeRepo) GetDB() *gorm.DB {
	return r.db
}

// FindActive returns the single active resume. The partial unique index keeps
// actives to at most one row; ordering by upload time picks the latest if that
// ever fails to hold.
func (r *ResumeRepo) FindActive() (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Where("is_active = ?", true).Order("uploaded_at DESC").First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Swap deactivates every existing record and inserts the new active one in a
// single transaction, so a failure between the two steps never leaves the
// store without an active resume.
func (r *ResumeRepo) Swap(resume *models.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		resume.IsActive = true
		return tx.Create(resume).Error
	})
}

// Delete removes a resume record from the database by id
func (r *ResumeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Resume{}, "id = ?", id).Error
}
