package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"wird/internal/modules/plugin/domain"
	pluginout "wird/internal/modules/plugin/port/out"
)

// FileManifestStore reads plugin manifests from plugins/plugins.json under
// the data directory. The file is hand-edited, so decoding is strict.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(basePath string) pluginout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: filepath.Join(basePath, "plugins", "plugins.json")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plugins.json: %w", err)
	}

	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugins.json: %w", err)
	}

	seen := map[string]bool{}
	for i := range manifests {
		name := manifests[i].Name
		if seen[name] {
			return nil, fmt.Errorf("decode plugins.json: duplicate plugin %q", name)
		}
		seen[name] = true
		// Relative binary paths resolve against the data directory so a
		// data dir can be moved wholesale.
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifests[i].Binary))
		}
	}
	return manifests, nil
}
