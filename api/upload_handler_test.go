package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lekzzicon/portfolio-backend/services"
)

func newUploadTestRouter(media services.MediaStore) *chi.Mux {
	h := newUploadHandler(media)
	r := chi.NewRouter()
	r.Post("/upload", h.uploadImage())
	return r
}

func TestUploadImage(t *testing.T) {
	media := &stubMediaStore{}
	router := newUploadTestRouter(media)

	body, contentType := multipartBody(t, "screenshot.png", "image/png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, media.uploadImageCalls)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "https://cdn.example.com/portfolio-projects/img.webp", resp["url"])
	assert.Equal(t, "portfolio-projects/img.webp", resp["publicId"])
}

func TestUploadImageMissingFile(t *testing.T) {
	media := &stubMediaStore{}
	router := newUploadTestRouter(media)

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, media.uploadImageCalls)
}

func TestUploadImageWithoutCredentials(t *testing.T) {
	router := newUploadTestRouter(nil)

	body, contentType := multipartBody(t, "screenshot.png", "image/png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUploadImageMediaFailure(t *testing.T) {
	media := &stubMediaStore{err: assert.AnError}
	router := newUploadTestRouter(media)

	body, contentType := multipartBody(t, "screenshot.png", "image/png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
