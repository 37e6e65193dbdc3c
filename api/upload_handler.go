package api

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/errs"
	"github.com/lekzzicon/portfolio-backend/services"
)

// maxImageSize caps project image uploads at 10 MiB.
const maxImageSize = 10 * 1024 * 1024

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	media     services.MediaStore
}

func newUploadHandler(media services.MediaStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		media:     media,
	}
}

// uploadImage stores a project image on the media host
// @Summary Upload project image
// @Description Uploads an image and returns its public URL and media key
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]any "Public URL and media key"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing file"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Upload failed or credentials missing"
// @Router /upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.media == nil {
			h.responder.WriteError(w, errs.NewConfigurationError("media store credentials"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file provided"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError("image", err))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		result, err := h.media.UploadImage(r.Context(), data, contentType)
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError("image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":  true,
			"url":      result.URL,
			"publicId": result.Key,
		})
	}
}
