package store

import (
	"encoding/json"
	"testing"

	"promosync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStore_Defaults(t *testing.T) {
	s := NewSettingsStore()

	settings := s.Get()
	assert.Equal(t, 30.0, settings.DefaultMargin)
	assert.Empty(t, settings.MarginRules)
	assert.True(t, settings.Notifications.OnComplete)
}

func TestSettingsStore_MergeIsShallow(t *testing.T) {
	s := NewSettingsStore()

	patch := map[string]json.RawMessage{
		"default_margin": json.RawMessage(`45`),
		"margin_rules":   json.RawMessage(`[{"field":"category","operator":"is","value":"Pens","margin":20}]`),
	}
	merged, err := s.Merge(patch)
	require.NoError(t, err)

	assert.Equal(t, 45.0, merged.DefaultMargin)
	require.Len(t, merged.MarginRules, 1)
	assert.Equal(t, models.RuleFieldCategory, merged.MarginRules[0].Field)
	// Untouched keys keep their values.
	assert.Equal(t, 60, merged.RateLimitPerMinute)

	// The merge persists.
	assert.Equal(t, 45.0, s.Get().DefaultMargin)
}

func TestSettingsStore_MergeRejectsInvalidValues(t *testing.T) {
	s := NewSettingsStore()

	_, err := s.Merge(map[string]json.RawMessage{
		"default_margin": json.RawMessage(`"lots"`),
	})
	require.Error(t, err)

	// Failed merges leave the settings untouched.
	assert.Equal(t, 30.0, s.Get().DefaultMargin)
}

func TestSettingsStore_GetReturnsCopies(t *testing.T) {
	s := NewSettingsStore()
	_, err := s.Merge(map[string]json.RawMessage{
		"margin_rules": json.RawMessage(`[{"field":"category","operator":"is","value":"Pens","margin":20}]`),
	})
	require.NoError(t, err)

	settings := s.Get()
	settings.MarginRules[0].Margin = 99
	settings.CategoryMap["a"] = "b"

	assert.Equal(t, 20.0, s.Get().MarginRules[0].Margin)
	assert.Empty(t, s.Get().CategoryMap)
}
