package wire

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Repository stores workflows as JSON files in a directory. It stands in
// for the remote workflow backend; the editor only ever talks to it
// through the wire shape.
type Repository struct {
	dir string
	log *zap.Logger
}

// NewRepository creates a repository rooted at dir. The directory is
// created on first save, not here.
func NewRepository(dir string, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{dir: dir, log: log}
}

// List returns the workflow names present in the directory, sorted.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a workflow by name.
func (r *Repository) Load(name string) (Workflow, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, slug(name)+".json"))
	if err != nil {
		return Workflow{}, fmt.Errorf("load workflow %q: %w", name, err)
	}
	return Decode(data)
}

// Save writes a workflow, overwriting any previous version of the same name.
func (r *Repository) Save(wf Workflow) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("save workflow %q: %w", wf.Name, err)
	}
	data, err := Encode(wf)
	if err != nil {
		return err
	}
	path := filepath.Join(r.dir, slug(wf.Name)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save workflow %q: %w", wf.Name, err)
	}
	r.log.Info("workflow saved",
		zap.String("name", wf.Name),
		zap.String("path", path),
		zap.Int("nodes", len(wf.Nodes)),
		zap.Int("connections", len(wf.Connections)))
	return nil
}

// slug maps a workflow name to a safe file stem.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "workflow"
	}
	return b.String()
}
