// Package file provides file-based persistence for archived pipeline runs.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

const runFileMode = 0o644

// RunRepository stores one JSON document per completed run under
// <root>/runs/.
type RunRepository struct {
	root string
}

func NewRunRepository(root string) *RunRepository {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &RunRepository{root: cleanRoot}
}

func (r *RunRepository) runsDir() string {
	return filepath.Join(r.root, "runs")
}

// Save archives a run, overwriting any previous document with the same ID.
func (r *RunRepository) Save(_ context.Context, run models.Run) error {
	err := os.MkdirAll(r.runsDir(), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.ID, err)
	}

	path := filepath.Join(r.runsDir(), run.ID+".json")

	err = os.WriteFile(path, data, runFileMode)
	if err != nil {
		return fmt.Errorf("failed to write run %s: %w", run.ID, err)
	}

	return nil
}

// List loads every archived run, most recently created first.
func (r *RunRepository) List(_ context.Context) ([]models.Run, error) {
	root := os.DirFS(r.runsDir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list run files: %w", err)
	}

	runs := make([]models.Run, 0, len(jsonFiles))

	for _, name := range jsonFiles {
		data, err := fs.ReadFile(root, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read run file %s: %w", name, err)
		}

		var run models.Run

		err = json.Unmarshal(data, &run)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run file %s: %w", name, err)
		}

		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	return runs, nil
}
