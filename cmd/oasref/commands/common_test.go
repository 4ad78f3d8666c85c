package commands

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	if got := FormatSpecPath(StdinFilePath); got != "<stdin>" {
		t.Errorf("FormatSpecPath(%q) = %q, want %q", StdinFilePath, got, "<stdin>")
	}
	if got := FormatSpecPath("api.yaml"); got != "api.yaml" {
		t.Errorf("FormatSpecPath(%q) = %q, want %q", "api.yaml", got, "api.yaml")
	}
}

func TestGroupHeading(t *testing.T) {
	tests := []struct {
		group string
		want  string
	}{
		{"schemas", "Schemas"},
		{"parameters", "Parameters"},
		{"responses", "Responses"},
		{"requestBodies", "Request Bodies"},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			if got := GroupHeading(tt.group); got != tt.want {
				t.Errorf("GroupHeading(%q) = %q, want %q", tt.group, got, tt.want)
			}
		})
	}
}
