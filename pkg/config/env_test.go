package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected string
	}{
		{name: "unset uses default", set: false, expected: "fallback"},
		{name: "blank uses default", value: "   ", set: true, expected: "fallback"},
		{name: "value is trimmed", value: "  gnews ", set: true, expected: "gnews"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_ENV_STRING", tt.value)
			}
			assert.Equal(t, tt.expected, GetEnvString("TEST_ENV_STRING", "fallback"))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "empty uses default", value: "", expected: 10},
		{name: "valid integer", value: "25", expected: 25},
		{name: "negative integer", value: "-3", expected: -3},
		{name: "invalid integer uses default", value: "ten", expected: 10},
		{name: "trailing garbage uses default", value: "10abc", expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_INT", tt.value)
			assert.Equal(t, tt.expected, GetEnvInt("TEST_ENV_INT", 10))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "empty uses default", value: "", expected: 10 * time.Second},
		{name: "valid duration", value: "1m30s", expected: 90 * time.Second},
		{name: "invalid duration uses default", value: "soon", expected: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_DURATION", tt.value)
			assert.Equal(t, tt.expected, GetEnvDuration("TEST_ENV_DURATION", 10*time.Second))
		})
	}
}

func TestGetEnvStringList(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty uses default", value: "", expected: []string{"*"}},
		{name: "only separators uses default", value: " , ,", expected: []string{"*"}},
		{
			name:     "values are trimmed",
			value:    "https://a.example, https://b.example ,",
			expected: []string{"https://a.example", "https://b.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_LIST", tt.value)
			assert.Equal(t, tt.expected, GetEnvStringList("TEST_ENV_LIST", []string{"*"}))
		})
	}
}

func TestLookupEnvSecret(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		value, ok := LookupEnvSecret("TEST_ENV_SECRET_UNSET_XYZ")
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("blank is not usable", func(t *testing.T) {
		t.Setenv("TEST_ENV_SECRET", "  ")
		_, ok := LookupEnvSecret("TEST_ENV_SECRET")
		assert.False(t, ok)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv("TEST_ENV_SECRET", " abc123 ")
		value, ok := LookupEnvSecret("TEST_ENV_SECRET")
		assert.True(t, ok)
		assert.Equal(t, "abc123", value)
	})
}

func TestValidateRanges(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))

	assert.NoError(t, ValidateDurationRange(5*time.Second, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(2*time.Minute, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(time.Second, time.Minute, time.Second))

	assert.NoError(t, ValidateIntRange(10, 1, 100))
	assert.Error(t, ValidateIntRange(0, 1, 100))
	assert.Error(t, ValidateIntRange(101, 1, 100))
}
