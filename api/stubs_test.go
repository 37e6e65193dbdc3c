package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lekzzicon/portfolio-backend/database"
	"github.com/lekzzicon/portfolio-backend/models"
	"github.com/lekzzicon/portfolio-backend/services"
)

// stubProjectStore records call counts so tests can assert that invalid input
// never reaches the store.
type stubProjectStore struct {
	projects map[uuid.UUID]*models.Project

	findAllCalls  int
	findByIDCalls int
	addCalls      int
	updateCalls   int
	deleteCalls   int

	err error
}

func newStubProjectStore(projects ...*models.Project) *stubProjectStore {
	s := &stubProjectStore{projects: make(map[uuid.UUID]*models.Project)}
	for _, p := range projects {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		s.projects[p.ID] = p
	}
	return s
}

func (s *stubProjectStore) FindAll(filter database.ProjectFilter) ([]*models.Project, error) {
	s.findAllCalls++
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Project
	for _, p := range s.projects {
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	s.findByIDCalls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *stubProjectStore) Add(project *models.Project) error {
	s.addCalls++
	if s.err != nil {
		return s.err
	}
	project.ID = uuid.New()
	s.projects[project.ID] = project
	return nil
}

func (s *stubProjectStore) Update(project *models.Project) error {
	s.updateCalls++
	if s.err != nil {
		return s.err
	}
	s.projects[project.ID] = project
	return nil
}

func (s *stubProjectStore) Delete(id uuid.UUID) error {
	s.deleteCalls++
	if s.err != nil {
		return s.err
	}
	delete(s.projects, id)
	return nil
}

type stubResumeStore struct {
	active *models.Resume

	findActiveCalls int
	swapCalls       int
	deleteCalls     int

	err error
}

func (s *stubResumeStore) FindActive() (*models.Resume, error) {
	s.findActiveCalls++
	if s.err != nil {
		return nil, s.err
	}
	if s.active == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.active, nil
}

func (s *stubResumeStore) Swap(resume *models.Resume) error {
	s.swapCalls++
	if s.err != nil {
		return s.err
	}
	resume.ID = uuid.New()
	resume.IsActive = true
	s.active = resume
	return nil
}

func (s *stubResumeStore) Delete(id uuid.UUID) error {
	s.deleteCalls++
	if s.err != nil {
		return s.err
	}
	if s.active != nil && s.active.ID == id {
		s.active = nil
	}
	return nil
}

type stubMediaStore struct {
	uploadImageCalls  int
	uploadResumeCalls int
	deleteCalls       int
	deletedKeys       []string

	err error
}

func (s *stubMediaStore) UploadImage(ctx context.Context, data []byte, contentType string) (*services.UploadResult, error) {
	s.uploadImageCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &services.UploadResult{
		URL: "https://cdn.example.com/portfolio-projects/img.webp",
		Key: "portfolio-projects/img.webp",
	}, nil
}

func (s *stubMediaStore) UploadResume(ctx context.Context, data []byte) (*services.UploadResult, error) {
	s.uploadResumeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &services.UploadResult{
		URL: "https://cdn.example.com/portfolio-resume/resume.pdf",
		Key: "portfolio-resume/resume.pdf",
	}, nil
}

func (s *stubMediaStore) Delete(ctx context.Context, key string) error {
	s.deleteCalls++
	s.deletedKeys = append(s.deletedKeys, key)
	return s.err
}

type stubEmailSender struct {
	sendCalls  int
	lastHTML   string
	recipients []string

	err error
}

func (s *stubEmailSender) Send(ctx context.Context, subject, html, replyTo string, recipients []string) error {
	s.sendCalls++
	s.lastHTML = html
	s.recipients = recipients
	return s.err
}

// multipartBody builds a multipart request body with a single "file" part.
func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}
