// Package persistence defines the storage interface for archived pipeline
// runs. The only implementation is file-based; the transient image file is
// not part of this layer.
package persistence

import (
	"context"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

// RunRepository archives completed runs and lists them most recent first.
type RunRepository interface {
	Save(ctx context.Context, run models.Run) error
	List(ctx context.Context) ([]models.Run, error)
}
