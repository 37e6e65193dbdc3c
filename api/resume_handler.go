package api

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/errs"
	"github.com/lekzzicon/portfolio-backend/models"
	"github.com/lekzzicon/portfolio-backend/services"
)

// resumeStore is the slice of the resume repository the handlers need.
type resumeStore interface {
	FindActive() (*models.Resume, error)
	Swap(resume *models.Resume) error
	Delete(id uuid.UUID) error
}

type resumeHandler struct {
	responder  Responder
	logger     zerolog.Logger
	resumeRepo resumeStore
	media      services.MediaStore
}

func newResumeHandler(resumeRepo resumeStore, media services.MediaStore) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		resumeRepo: resumeRepo,
		media:      media,
	}
}

// getResume returns the currently active resume
// @Summary Get active resume
// @Description Returns the URL and metadata of the active resume
// @Tags Resume
// @Produce json
// @Success 200 {object} map[string]any "Active resume metadata"
// @Failure 404 {object} ErrorResponse "Not Found - No resume uploaded"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching resume"
// @Router /resume [get]
func (h resumeHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumeRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resume", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"url":        resume.MediaURL,
			"uploadedAt": resume.UploadedAt,
			"filename":   resume.OriginalName,
			"fileSize":   resume.FileSize,
		})
	}
}

// uploadResume replaces the active resume with a new PDF
// @Summary Upload resume
// @Description Uploads a PDF to the media store and swaps it in as the single active resume
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume PDF, at most 10 MiB"
// @Success 200 {object} map[string]any "Upload confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing file, wrong type or too large"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Upload failed"
// @Router /resume [post]
func (h resumeHandler) uploadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.media == nil {
			h.responder.WriteError(w, errs.NewConfigurationError("media store credentials"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file provided"))
			return
		}
		defer file.Close()

		// Both preconditions are checked before any media store call
		if header.Header.Get("Content-Type") != models.ResumeContentType {
			h.responder.WriteError(w, errs.NewInvalidFieldError("file", "Only PDF files are allowed"))
			return
		}
		if header.Size > models.MaxResumeSize {
			h.responder.WriteError(w, errs.NewInvalidFieldError("file", "File size must be less than 10MB"))
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, models.MaxResumeSize))
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError("resume", err))
			return
		}

		// Media upload first, record swap second; a media failure leaves the
		// previous record active.
		result, err := h.media.UploadResume(r.Context(), data)
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError("resume", err))
			return
		}

		resume := models.Resume{
			Filename:     models.ResumeFilename,
			OriginalName: header.Filename,
			MediaURL:     result.URL,
			MediaKey:     result.Key,
			FileSize:     header.Size,
			UploadedAt:   time.Now().UTC(),
		}

		if err := h.resumeRepo.Swap(&resume); err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError("resume", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"message":    "Resume uploaded successfully",
			"url":        resume.MediaURL,
			"publicId":   resume.MediaKey,
			"uploadedAt": resume.UploadedAt,
		})
	}
}

// deleteResume removes the active resume and its media object
// @Summary Delete resume
// @Description Deletes the media object of the active resume, then its record
// @Tags Resume
// @Produce json
// @Success 200 {object} map[string]any "Deletion confirmation"
// @Failure 404 {object} ErrorResponse "Not Found - No resume to delete"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting resume"
// @Router /resume [delete]
func (h resumeHandler) deleteResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumeRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resume", err))
			return
		}

		// A failed media deletion leaves the object orphaned at worst; the
		// record is stale either way, so it is removed regardless.
		if h.media != nil {
			if err := h.media.Delete(r.Context(), resume.MediaKey); err != nil {
				h.logger.Error().Err(err).Str("key", resume.MediaKey).Msg("Failed to delete resume media object")
			}
		}

		if err := h.resumeRepo.Delete(resume.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "resume", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Resume deleted successfully",
		})
	}
}
