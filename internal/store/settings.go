package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"promosync/internal/models"
)

// SettingsStore holds the process-wide settings. Updates are shallow merges:
// top-level keys present in the patch replace the current values wholesale.
type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: models.DefaultSettings(),
	}
}

func (s *SettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.settings
	out.MarginRules = append([]models.MarginRule(nil), s.settings.MarginRules...)
	out.CategoryMap = map[string]string{}
	for k, v := range s.settings.CategoryMap {
		out.CategoryMap[k] = v
	}
	return out
}

// Merge overlays the patch's top-level keys onto the current settings and
// returns the merged result.
func (s *SettingsStore) Merge(patch map[string]json.RawMessage) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := json.Marshal(s.settings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &merged); err != nil {
		return models.Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	for key, value := range patch {
		merged[key] = value
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to marshal merged settings: %w", err)
	}

	var next models.Settings
	if err := json.Unmarshal(raw, &next); err != nil {
		return models.Settings{}, fmt.Errorf("invalid settings value: %w", err)
	}

	s.settings = next
	return next, nil
}
