// Package store persists project documents in a local sqlite database.
// Each project is stored wholesale as one JSON document; every
// mutating operation rewrites the whole document, so there is no
// field-level persistence to reconcile.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Elish84/Gantt/internal/models"
)

const defaultTimeout = 5 * time.Second

// Store wraps the sqlite connection.
type Store struct {
	DB *sql.DB
}

// ProjectRecord is a project list entry without the document body.
type ProjectRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open initializes the database connection and schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping store: %w", err)
	}
	s := &Store{DB: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		doc TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}

// CreateProject stores a fresh project containing only the sentinel
// topic and returns its generated id.
func (s *Store) CreateProject(ctx context.Context, name string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	project := models.NewProject(name)
	doc, err := json.Marshal(project)
	if err != nil {
		return "", fmt.Errorf("encode project: %w", err)
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO projects (id, name, doc, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, project.Name, string(doc), now, now)
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

// GetProject loads and normalizes a project document.
func (s *Store) GetProject(ctx context.Context, id string) (models.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc string
	err := s.DB.QueryRowContext(ctx, `SELECT doc FROM projects WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	var project models.Project
	if err := json.Unmarshal([]byte(doc), &project); err != nil {
		return models.Project{}, fmt.Errorf("decode project %s: %w", id, err)
	}
	return models.NormalizeProject(project), nil
}

// SaveProject rewrites a project document and bumps updated_at.
func (s *Store) SaveProject(ctx context.Context, id string, project models.Project) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	res, err := s.DB.ExecContext(ctx,
		`UPDATE projects SET name = ?, doc = ?, updated_at = ? WHERE id = ?`,
		project.Name, string(doc), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("save project %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject removes a project document.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ListProjects returns all projects, most recently updated first.
func (s *Store) ListProjects(ctx context.Context) ([]ProjectRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM projects ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectRecord
	for rows.Next() {
		var rec ProjectRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
