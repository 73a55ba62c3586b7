package storage

import (
	"ctr/internal/config"
	"ctr/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.ReportOutput, error)
	// SaveOutput writes the full output (e.g. after resolving failures).
	SaveOutput(output *domain.ReportOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
