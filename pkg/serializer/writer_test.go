package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const test1Name = "test1"

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable struct {
	rows [][]string
}

func (t testTable) TableHeader() []string { return []string{"MACHINE", "EU/T"} }
func (t testTable) TableRows() [][]string { return t.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: test1Name, Value: 123}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 1 || result[0].Name != test1Name {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: test1Name, Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Name", test1Name, "Value", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTable{rows: [][]string{{"EBF", "1646.16"}, {"LCR", "480"}}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, underline, 2 rows), got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "MACHINE") {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "-------") {
		t.Errorf("unexpected underline %q", lines[1])
	}
	if !strings.Contains(lines[2], "1646.16") {
		t.Errorf("unexpected first row %q", lines[2])
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if writer.format != FormatJSON {
		t.Errorf("expected fallback to JSON, got %s", writer.format)
	}
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("expected stdout when output is nil")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path uses stdout", func(t *testing.T) {
		writer := NewFileWriterOrStdout(FormatJSON, "  ")
		if writer.output != os.Stdout {
			t.Error("expected stdout writer")
		}
		if err := writer.Close(); err != nil {
			t.Errorf("Close on stdout writer failed: %v", err)
		}
	})

	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		writer := NewFileWriterOrStdout(FormatYAML, path)
		if err := writer.Serialize(context.Background(), testConfig{Name: test1Name, Value: 1}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		// second close is a no-op
		if err := writer.Close(); err != nil {
			t.Fatalf("second Close failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(content), "name: test1") {
			t.Errorf("unexpected file content: %s", content)
		}
	})

	t.Run("invalid path falls back to stdout", func(t *testing.T) {
		writer := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		if writer.output != os.Stdout {
			t.Error("expected stdout fallback")
		}
	})
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}
