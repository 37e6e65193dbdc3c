package api

import (
	"github.com/lekzzicon/portfolio-backend/config"
	"github.com/lekzzicon/portfolio-backend/database"
	"github.com/lekzzicon/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, media services.MediaStore, mailer services.EmailSender, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(cfg),
		projectHandler: newProjectHandler(db.ProjectRepo()),
		resumeHandler:  newResumeHandler(db.ResumeRepo(), media),
		uploadHandler:  newUploadHandler(media),
		contactHandler: newContactHandler(mailer, config.GetString(cfg, "CONTACT_RECIPIENT", "")),
	}
}
