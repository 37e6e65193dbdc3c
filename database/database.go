package database

import (
	"gorm.io/gorm"

	"github.com/lekzzicon/portfolio-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	resumeRepo  *ResumeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		resumeRepo:  NewResumeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

// Migrate creates the schema and the partial unique index backing the
// single-active-resume invariant.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}, &models.Resume{}); err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_resumes_single_active ON resumes (is_active) WHERE is_active",
	).Error
}
