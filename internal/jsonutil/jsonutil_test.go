package jsonutil

import (
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestUnmarshalWithContext(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v payload
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("UnmarshalWithContext() error = %q, want context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecodeWithContext(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "object", body: ` {"name":"test"}` + "\n"},
		{name: "empty", body: "", wantErr: "empty body"},
		{name: "whitespace", body: " \n\t", wantErr: "empty body"},
		{name: "null", body: "null", wantErr: "expected JSON object"},
		{name: "array", body: `[{"name":"test"}]`, wantErr: "expected JSON object"},
		{name: "html error page", body: "<html><body>502 Bad Gateway</body></html>", wantErr: "expected JSON object"},
		{name: "truncated", body: `{"name":`, wantErr: "summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v payload
			err := DecodeWithContext(strings.NewReader(tt.body), &v, "summary")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("DecodeWithContext() unexpected error: %v", err)
				}
				if v.Name != "test" {
					t.Errorf("DecodeWithContext() v.Name = %q, want %q", v.Name, "test")
				}
				return
			}
			if err == nil {
				t.Fatalf("DecodeWithContext() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("DecodeWithContext() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("x", 40)
	if got := preview([]byte(long)); got != strings.Repeat("x", 32)+"..." {
		t.Errorf("preview(long) = %q", got)
	}
	if got := preview([]byte("short")); got != "short" {
		t.Errorf("preview(short) = %q", got)
	}
}
