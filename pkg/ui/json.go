package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
)

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
	}
	return nil
}

type jsonError struct {
	Error    string                 `json:"error"`
	Code     errors.ErrorCode       `json:"code"`
	ExitCode int                    `json:"exitCode"`
	Details  map[string]interface{} `json:"details,omitempty"`
}
