package metrics

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Error creating test file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		file        string
		content     string
		expected    []float64
		errContains string
	}{
		{
			name:     "One value per line",
			file:     "lines.txt",
			content:  "12\n15.5\n\n# outlier removed\n11\n",
			expected: []float64{12, 15.5, 11},
		},
		{
			name:     "JSON array",
			file:     "values.json",
			content:  "  [17, 19.25, \"16\"]\n",
			expected: []float64{17, 19.25, 16},
		},
		{
			name:     "CSV with header and extra columns",
			file:     "export.csv",
			content:  "seconds,user\n12,a\n15,b\n,c\n11,d\n",
			expected: []float64{12, 15, 11},
		},
		{
			name:        "Invalid line",
			file:        "bad.txt",
			content:     "12\nabc\n",
			errContains: ":2: invalid number",
		},
		{
			name:        "Invalid CSV row",
			file:        "bad.csv",
			content:     "12\n13\noops\n",
			errContains: "row 3: invalid number",
		},
		{
			name:        "Invalid JSON element",
			file:        "bad.json",
			content:     `[1, true]`,
			errContains: "expected a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			values, err := Read(path)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("Expected error containing '%s', got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(values, tt.expected) {
				t.Errorf("Read() = %v, want %v", values, tt.expected)
			}
		})
	}
}

func TestRead_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := map[string]interface{}{
		"A1": "revenue",
		"A2": 12.5,
		"A3": 18,
		"A4": 9.75,
		"B2": "ignored",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("SetCellValue(%s) error = %v", cell, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	f.Close()

	values, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	expected := []float64{12.5, 18, 9.75}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Read() = %v, want %v", values, expected)
	}
}

func TestRead_MissingFile(t *testing.T) {
	for _, name := range []string{"missing.txt", "missing.csv", "missing.xlsx"} {
		if _, err := Read(filepath.Join(t.TempDir(), name)); err == nil {
			t.Errorf("Expected an error for %s", name)
		}
	}
}
