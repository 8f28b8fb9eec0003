package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// SelectionStore keeps the per-project set of visible topic ids in a
// small JSON file. A project with no entry has every topic visible, so
// the file only records projects whose filter was narrowed at least
// once.
type SelectionStore struct {
	mu      sync.Mutex
	path    string
	entries map[string][]string
}

// NewSelectionStore loads the selection file under dir, tolerating a
// missing or unreadable file.
func NewSelectionStore(dir string) *SelectionStore {
	s := &SelectionStore{
		path:    filepath.Join(dir, "selections.json"),
		entries: make(map[string][]string),
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	var entries map[string][]string
	if json.Unmarshal(data, &entries) == nil && entries != nil {
		s.entries = entries
	}
	return s
}

// Visible returns the visible topic id set for a project. A nil map
// means no filter is stored and all topics are visible.
func (s *SelectionStore) Visible(projectID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, ok := s.entries[projectID]
	if !ok {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// SetVisible stores the filter for a project and rewrites the file.
// Passing a nil set clears the entry, restoring all-visible.
func (s *SelectionStore) SetVisible(projectID string, set map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if set == nil {
		delete(s.entries, projectID)
	} else {
		ids := make([]string, 0, len(set))
		for id, on := range set {
			if on {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
		s.entries[projectID] = ids
	}
	return s.save()
}

// Forget drops the stored filter for a deleted project.
func (s *SelectionStore) Forget(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[projectID]; !ok {
		return nil
	}
	delete(s.entries, projectID)
	return s.save()
}

func (s *SelectionStore) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
