package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lekzzicon/portfolio-backend/models"
)

// ProjectFilter narrows a FindAll query. The zero value returns everything,
// newest first.
type ProjectFilter struct {
	Category string // exact category; "" or "all" means no filter
	Search   string // case-insensitive text search
	Limit    int    // 0 = unbounded
	Sort     string // mongoose-style field spec, e.g. "-createdAt" or "title"
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"date":      "date",
	"title":     "title",
}

func orderClause(sort string) string {
	if sort == "" {
		sort = "-createdAt"
	}
	desc := strings.HasPrefix(sort, "-")
	column, ok := sortColumns[strings.TrimPrefix(sort, "-")]
	if !ok {
		column, desc = "created_at", true
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// FindAll returns projects matching the filter. Category and ordering are
// pushed to the database; the free-text search is applied in memory since the
// technologies column is a serialized list and the dataset is a handful of
// portfolio entries. An empty result is not an error.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.Order(orderClause(filter.Sort))

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	// The limit has to be applied after the in-memory search filter, so it is
	// only pushed down when there is no search term.
	if filter.Limit > 0 && filter.Search == "" {
		query = query.Limit(filter.Limit)
	}

	var projects []*models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	if filter.Search != "" {
		matched := projects[:0]
		for _, project := range projects {
			if matchesSearch(project, filter.Search) {
				matched = append(matched, project)
			}
		}
		projects = matched
		if filter.Limit > 0 && len(projects) > filter.Limit {
			projects = projects[:filter.Limit]
		}
	}

	return projects, nil
}

// matchesSearch reports whether the search term appears as a substring of the
// title or description, or matches a technology exactly. All comparisons are
// case-insensitive.
func matchesSearch(project *models.Project, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(project.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(project.Description), needle) {
		return true
	}
	for _, tech := range project.Technologies {
		if strings.EqualFold(tech, search) {
			return true
		}
	}
	return false
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
