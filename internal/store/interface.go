package store

import (
	"context"

	"github.com/Elish84/Gantt/internal/models"
)

// ProjectRepository defines the project document operations.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=store
type ProjectRepository interface {
	CreateProject(ctx context.Context, name string) (string, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	SaveProject(ctx context.Context, id string, project models.Project) error
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]ProjectRecord, error)
}

var _ ProjectRepository = (*Store)(nil)
