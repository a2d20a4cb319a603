package storage

import (
	"time"

	"tdep/internal/config"
	"tdep/internal/domain"
)

// Storage persists and loads run results (e.g. for the report viewer).
type Storage interface {
	Save(results []domain.UnitResult, details []domain.UnitDetail, duration time.Duration) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after the viewer marks
	// failures resolved).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
