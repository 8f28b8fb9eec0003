package tui

import (
	"context"
	"sync"

	"github.com/Elish84/Gantt/internal/models"
)

// session is the mutable document shared between the bubbletea model
// and the autosave timer goroutine. The model is copied by value on
// every Update, so the timer needs one stable place to read the latest
// state from.
type session struct {
	mu      sync.Mutex
	repo    Repository
	id      string
	project models.Project
}

func newSession(repo Repository) *session {
	return &session{repo: repo}
}

func (s *session) set(id string, p models.Project) {
	s.mu.Lock()
	s.id = id
	s.project = p
	s.mu.Unlock()
}

func (s *session) save() error {
	s.mu.Lock()
	id, project := s.id, s.project
	s.mu.Unlock()
	if id == "" {
		return nil
	}
	return s.repo.SaveProject(context.Background(), id, project)
}
