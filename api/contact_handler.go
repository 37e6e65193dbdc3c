package api

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/mail"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/errs"
	"github.com/lekzzicon/portfolio-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    services.EmailSender
	recipient string
}

func newContactHandler(mailer services.EmailSender, recipient string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
		recipient: recipient,
	}
}

type contactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitContact relays a contact-form submission to the site owner
// @Summary Submit contact message
// @Description Sends the contact-form message to the site owner by email
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body contactMessage true "Contact message"
// @Success 200 {object} map[string]any "Delivery confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid fields"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Delivery failed"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg contactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		switch {
		case msg.Name == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case msg.Email == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		case msg.Message == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if _, err := mail.ParseAddress(msg.Email); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}

		if h.mailer == nil || h.recipient == "" {
			h.responder.WriteError(w, errs.NewConfigurationError("contact email configuration"))
			return
		}

		subject := msg.Subject
		if subject == "" {
			subject = "New message from portfolio contact form"
		}

		body := fmt.Sprintf(
			"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
		)

		if err := h.mailer.Send(r.Context(), subject, body, msg.Email, []string{h.recipient}); err != nil {
			h.responder.WriteError(w, errs.NewEmailDeliveryError(err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Message sent successfully",
		})
	}
}
