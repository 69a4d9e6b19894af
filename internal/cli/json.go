package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/zietsense/zietsense/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound  = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeUnknownMachine  = "UNKNOWN_MACHINE"
	ErrCodeRegistryInvalid = "REGISTRY_INVALID"
	ErrCodeUnknown         = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var zsErr *errors.Error
	if stderrors.As(err, &zsErr) {
		return &JSONError{
			Code:       mapErrorCode(zsErr.Code, zsErr.Message),
			Message:    zsErr.Message,
			Suggestion: zsErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	msgLower := strings.ToLower(message)

	switch internalCode {
	case errors.ErrConfig:
		switch {
		case strings.Contains(msgLower, "unknown machine"):
			return ErrCodeUnknownMachine
		case strings.Contains(msgLower, "not found"):
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrRegistry:
		return ErrCodeRegistryInvalid
	}

	return ErrCodeUnknown
}
