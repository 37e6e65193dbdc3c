package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lekzzicon/portfolio-backend/models"
	"github.com/lekzzicon/portfolio-backend/services"
)

func newResumeTestRouter(store resumeStore, media services.MediaStore) *chi.Mux {
	h := newResumeHandler(store, media)
	r := chi.NewRouter()
	r.Get("/resume", h.getResume())
	r.Post("/resume", h.uploadResume())
	r.Delete("/resume", h.deleteResume())
	return r
}

func activeResume() *models.Resume {
	return &models.Resume{
		ID:           uuid.New(),
		Filename:     models.ResumeFilename,
		OriginalName: "jane-doe-cv.pdf",
		MediaURL:     "https://cdn.example.com/portfolio-resume/resume.pdf",
		MediaKey:     "portfolio-resume/resume.pdf",
		FileSize:     2048,
		UploadedAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func TestGetResume(t *testing.T) {
	store := &stubResumeStore{active: activeResume()}
	router := newResumeTestRouter(store, &stubMediaStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resume", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://cdn.example.com/portfolio-resume/resume.pdf", body["url"])
	assert.Equal(t, "jane-doe-cv.pdf", body["filename"])
	assert.Equal(t, float64(2048), body["fileSize"])
}

func TestGetResumeNone(t *testing.T) {
	router := newResumeTestRouter(&stubResumeStore{}, &stubMediaStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resume", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadResume(t *testing.T) {
	store := &stubResumeStore{}
	media := &stubMediaStore{}
	router := newResumeTestRouter(store, media)

	body, contentType := multipartBody(t, "jane-doe-cv.pdf", "application/pdf", []byte("%PDF-1.7 fake"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, media.uploadResumeCalls)
	assert.Equal(t, 1, store.swapCalls)

	require.NotNil(t, store.active)
	assert.True(t, store.active.IsActive)
	assert.Equal(t, models.ResumeFilename, store.active.Filename)
	assert.Equal(t, "jane-doe-cv.pdf", store.active.OriginalName)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "portfolio-resume/resume.pdf", resp["publicId"])
}

func TestUploadResumeReplacesPreviousActive(t *testing.T) {
	store := &stubResumeStore{active: activeResume()}
	router := newResumeTestRouter(store, &stubMediaStore{})

	body, contentType := multipartBody(t, "newer-cv.pdf", "application/pdf", []byte("%PDF-1.7 fake"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "newer-cv.pdf", store.active.OriginalName)
}

func TestUploadResumeRejectsNonPDFBeforeMediaCall(t *testing.T) {
	media := &stubMediaStore{}
	store := &stubResumeStore{}
	router := newResumeTestRouter(store, media)

	body, contentType := multipartBody(t, "cv.docx", "application/msword", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, media.uploadResumeCalls)
	assert.Equal(t, 0, store.swapCalls)
}

func TestUploadResumeRejectsOversizeBeforeMediaCall(t *testing.T) {
	media := &stubMediaStore{}
	store := &stubResumeStore{}
	router := newResumeTestRouter(store, media)

	oversized := bytes.Repeat([]byte("a"), models.MaxResumeSize+1)
	body, contentType := multipartBody(t, "huge.pdf", "application/pdf", oversized)
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, media.uploadResumeCalls)
}

func TestUploadResumeMissingFile(t *testing.T) {
	router := newResumeTestRouter(&stubResumeStore{}, &stubMediaStore{})

	req := httptest.NewRequest(http.MethodPost, "/resume", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadResumeMediaFailureLeavesRecordUntouched(t *testing.T) {
	media := &stubMediaStore{err: assert.AnError}
	store := &stubResumeStore{}
	router := newResumeTestRouter(store, media)

	body, contentType := multipartBody(t, "cv.pdf", "application/pdf", []byte("%PDF-1.7 fake"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, store.swapCalls, "no record may be written when the media upload fails")
}

func TestUploadResumeWithoutMediaStoreConfigured(t *testing.T) {
	store := &stubResumeStore{}
	router := newResumeTestRouter(store, nil)

	body, contentType := multipartBody(t, "cv.pdf", "application/pdf", []byte("%PDF-1.7 fake"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, store.swapCalls)
}

func TestDeleteResume(t *testing.T) {
	resume := activeResume()
	store := &stubResumeStore{active: resume}
	media := &stubMediaStore{}
	router := newResumeTestRouter(store, media)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/resume", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"portfolio-resume/resume.pdf"}, media.deletedKeys)
	assert.Equal(t, 1, store.deleteCalls)
	assert.Nil(t, store.active)
}

func TestDeleteResumeNoneSkipsMediaStore(t *testing.T) {
	media := &stubMediaStore{}
	store := &stubResumeStore{}
	router := newResumeTestRouter(store, media)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/resume", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, media.deleteCalls, "404 must be decided without touching the media store")
	assert.Equal(t, 0, store.deleteCalls)
}

func TestDeleteResumeMediaFailureStillRemovesRecord(t *testing.T) {
	resume := activeResume()
	store := &stubResumeStore{active: resume}
	media := &stubMediaStore{err: assert.AnError}
	router := newResumeTestRouter(store, media)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/resume", nil))

	// The stale record is removed even when the media deletion fails
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.deleteCalls)
}
