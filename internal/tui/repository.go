package tui

import (
	"context"

	"github.com/Elish84/Gantt/internal/models"
	"github.com/Elish84/Gantt/internal/store"
)

// Repository defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=repository.go -destination=mock_repository_test.go -package=tui
type Repository interface {
	CreateProject(ctx context.Context, name string) (string, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	SaveProject(ctx context.Context, id string, project models.Project) error
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]store.ProjectRecord, error)
}

var _ Repository = (*store.Store)(nil)
