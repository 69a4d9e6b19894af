package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zietsense/zietsense/internal/errors"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"key": "value"}))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, true, env["success"])
	assert.Equal(t, map[string]interface{}{"key": "value"}, env["data"])
	assert.NotContains(t, env, "error")
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrRegistry, "Machine table is empty", "Define at least one machine.")
	require.NoError(t, WriteJSONFromError(&buf, err))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeRegistryInvalid, env.Error.Code)
	assert.Equal(t, "Machine table is empty", env.Error.Message)
	assert.Equal(t, "Define at least one machine.", env.Error.Suggestion)
}

func TestErrorToJSON(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"nil", nil, ""},
		{"config not found", errors.New(errors.ErrConfig, "Config file not found", ""), ErrCodeConfigNotFound},
		{"config invalid", errors.New(errors.ErrConfig, "Invalid config format", ""), ErrCodeConfigInvalid},
		{"unknown machine", errors.New(errors.ErrConfig, "Unknown machine 'loom'", ""), ErrCodeUnknownMachine},
		{"registry", errors.New(errors.ErrRegistry, "Machine table is empty", ""), ErrCodeRegistryInvalid},
		{"ui", errors.New(errors.ErrUI, "No machine selected", ""), ErrCodeUnknown},
		{"wrapped", fmt.Errorf("loading: %w", errors.New(errors.ErrRegistry, "bad", "")), ErrCodeRegistryInvalid},
		{"plain", fmt.Errorf("boom"), ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			if tt.err == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}
