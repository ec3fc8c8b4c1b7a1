package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{name: "json lowercase", path: "batch.json", expected: FormatJSON},
		{name: "json uppercase", path: "BATCH.JSON", expected: FormatJSON},
		{name: "yaml extension", path: "batch.yaml", expected: FormatYAML},
		{name: "yml extension", path: "batch.yml", expected: FormatYAML},
		{name: "unknown defaults to json", path: "batch.txt", expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader_RejectsTable(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReader_DeserializeJSON(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader(`{"amount": 2, "unit": "cup"}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var got testConversion
	if err := reader.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Amount != 2 || got.Unit != "cup" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversion.yaml")
	content := "amount: 250\nunit: g\ningredient: Flour\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := FromFile[testConversion](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Amount != 250 || got.Unit != "g" || got.Ingredient != "Flour" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile[testConversion]("/does/not/exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReader_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
