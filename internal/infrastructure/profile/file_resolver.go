package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

var _ port.ProfileResolver = (*FileResolver)(nil)

// File is the layout of a profile file. It mirrors the profile service's data file,
// so a JSON database of that service can be used as is.
type File struct {
	AnalysisProfiles []Document `yaml:"analysisProfiles" json:"analysisProfiles"`
}

// FileResolver implements port.ProfileResolver on a YAML (or JSON) file. The file is
// read on every call, so each job sees the file as it is at fetch time.
type FileResolver struct {
	path string
}

// NewFileResolver creates a resolver reading profiles from path.
func NewFileResolver(path string) *FileResolver {
	return &FileResolver{path: path}
}

// Resolve reads the file and returns the profile whose id matches mode. A missing or
// unreadable file and an absent profile are reported as ErrProfileUnavailable.
func (r *FileResolver) Resolve(_ context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error) {
	docs, err := ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProfileUnavailable, err)
	}

	for _, doc := range docs {
		if strings.EqualFold(doc.ID, mode.String()) {
			return doc.ToModel()
		}
	}
	return nil, fmt.Errorf("%w: no profile %q in %s", model.ErrProfileUnavailable, mode, r.path)
}

// ReadFile parses all profile documents of a profile file.
func ReadFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}
	return f.AnalysisProfiles, nil
}
