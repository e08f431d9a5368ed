// Package jsonutil provides shared helpers for decoding JSON payloads
// with contextual error messages.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodyBytes caps how much of a response body DecodeWithContext reads.
const MaxBodyBytes = 1 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext reads at most MaxBodyBytes from r and unmarshals the
// result into v. The payload must be a single JSON object; empty bodies,
// null and non-object values are rejected.
func DecodeWithContext(r io.Reader, v interface{}, context string) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: reading body: %w", context, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	if data[0] != '{' {
		return fmt.Errorf("%s: expected JSON object, got %q", context, preview(data))
	}
	return UnmarshalWithContext(data, v, context)
}

// preview returns at most the first 32 bytes of data for error messages.
func preview(data []byte) string {
	if len(data) > 32 {
		return string(data[:32]) + "..."
	}
	return string(data)
}
