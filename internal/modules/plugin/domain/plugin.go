package domain

import (
	"errors"
	"fmt"
	"regexp"
)

type Capability string

const (
	CapabilityTranslation Capability = "translation"
	CapabilityRecitation  Capability = "recitation"
)

var (
	ErrPluginDisabled    = errors.New("plugin is disabled")
	ErrChecksumMismatch  = errors.New("plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("plugin capability missing")
	ErrEditionNotFound   = errors.New("plugin edition not found")
	ErrPluginTimeout     = errors.New("plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("plugin capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityTranslation, CapabilityRecitation:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// Edition is one translation a plugin can serve.
type Edition struct {
	ID       string
	Name     string
	Language string
}

func (e Edition) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("edition id is required")
	}
	if e.Language == "" {
		return fmt.Errorf("edition %s missing language", e.ID)
	}
	return nil
}

// PluginVerse is one verse as served by a translation plugin.
type PluginVerse struct {
	ID          int
	Surah       int
	Ayah        int
	Arabic      string
	Translation string
}

type FetchSurahRequest struct {
	Surah   int
	Edition string
}

func (r FetchSurahRequest) Validate() error {
	if r.Surah < 1 || r.Surah > 114 {
		return fmt.Errorf("surah %d out of range", r.Surah)
	}
	if r.Edition == "" {
		return fmt.Errorf("edition is required")
	}
	return nil
}
