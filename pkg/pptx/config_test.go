package pptx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.StrictContentTypes)
	assert.NoError(t, config.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("PPTX_LOG_LEVEL", "debug")
	t.Setenv("PPTX_STRICT_CONTENT_TYPES", "true")

	config := ConfigFromEnvironment()
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.StrictContentTypes)
}

func TestConfigFromEnvironment_Defaults(t *testing.T) {
	t.Setenv("PPTX_LOG_LEVEL", "")
	t.Setenv("PPTX_STRICT_CONTENT_TYPES", "")

	config := ConfigFromEnvironment()
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.StrictContentTypes)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx.toml")
	content := `log_level = "info"
strict_content_types = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "info", config.LogLevel)
	assert.True(t, config.StrictContentTypes)
}

func TestLoadConfigFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx.toml")
	require.NoError(t, os.WriteFile(path, []byte(`strict_content_types = true`), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
	assert.True(t, config.StrictContentTypes)
}

func TestLoadConfigFile_InvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pptx.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "loud"`), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"", false},
		{"trace", false},
	}

	for _, tt := range tests {
		config := &Config{LogLevel: tt.level}
		err := config.Validate()
		if tt.valid {
			assert.NoError(t, err, "level %q", tt.level)
		} else {
			assert.Error(t, err, "level %q", tt.level)
		}
	}
}

func TestSetGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	SetGlobalConfig(&Config{LogLevel: "error", StrictContentTypes: true})

	config := GetGlobalConfig()
	assert.Equal(t, "error", config.LogLevel)
	assert.True(t, config.StrictContentTypes)

	// callers get a copy, mutating it does not leak back
	config.StrictContentTypes = false
	assert.True(t, GetGlobalConfig().StrictContentTypes)
}
