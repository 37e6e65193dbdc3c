package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lekzzicon/portfolio-backend/models"
)

func newResume(originalName string, uploadedAt time.Time) *models.Resume {
	return &models.Resume{
		Filename:     models.ResumeFilename,
		OriginalName: originalName,
		MediaURL:     "https://cdn.example.com/portfolio-resume/resume.pdf",
		MediaKey:     "portfolio-resume/resume.pdf",
		FileSize:     1024,
		UploadedAt:   uploadedAt,
	}
}

func TestResumeRepoFindActiveNone(t *testing.T) {
	repo := NewResumeRepo(newTestDB(t))

	_, err := repo.FindActive()
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestResumeRepoSwapKeepsSingleActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewResumeRepo(db)

	first := newResume("cv-v1.pdf", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Swap(first))

	second := newResume("cv-v2.pdf", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Swap(second))

	active, err := repo.FindActive()
	require.NoError(t, err)
	assert.Equal(t, "cv-v2.pdf", active.OriginalName)

	// Exactly one active row; the previous record stays behind inactive
	var activeCount, totalCount int64
	require.NoError(t, db.Model(&models.Resume{}).Where("is_active = ?", true).Count(&activeCount).Error)
	require.NoError(t, db.Model(&models.Resume{}).Count(&totalCount).Error)
	assert.Equal(t, int64(1), activeCount)
	assert.Equal(t, int64(2), totalCount)
}

func TestResumeRepoDelete(t *testing.T) {
	repo := NewResumeRepo(newTestDB(t))

	resume := newResume("cv.pdf", time.Now().UTC())
	require.NoError(t, repo.Swap(resume))
	require.NoError(t, repo.Delete(resume.ID))

	_, err := repo.FindActive()
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
