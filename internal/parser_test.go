package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempFile(t, "transactions.json", `[
		{"date": "2024-01-15", "customer": "Amit", "product": "Laptop", "amount": 55000},
		{"date": "2024-01-20", "customer": "Riya", "product": "Phone", "amount": 30000.5}
	]`)

	transactions, err := ParseJSON(path)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}
	want := Transaction{Date: "2024-01-15", Customer: "Amit", Product: "Laptop", Amount: 55000}
	if transactions[0] != want {
		t.Errorf("transactions[0] = %+v, want %+v", transactions[0], want)
	}
	if transactions[1].Amount != 30000.5 {
		t.Errorf("transactions[1].Amount = %v, want 30000.5", transactions[1].Amount)
	}
}

func TestParseJSON_EmptyArray(t *testing.T) {
	path := writeTempFile(t, "empty.json", `[]`)

	transactions, err := ParseJSON(path)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(transactions))
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing field",
			content: `[{"date": "2024-01-15", "customer": "Amit", "amount": 500}]`,
		},
		{
			name:    "non-numeric amount",
			content: `[{"date": "2024-01-15", "customer": "Amit", "product": "Laptop", "amount": "lots"}]`,
		},
		{
			name:    "malformed date",
			content: `[{"date": "15/01/2024", "customer": "Amit", "product": "Laptop", "amount": 500}]`,
		},
		{
			name:    "not an array",
			content: `{"date": "2024-01-15"}`,
		},
		{
			name:    "invalid JSON",
			content: `[{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "bad.json", tt.content)
			if _, err := ParseJSON(path); err == nil {
				t.Error("ParseJSON() expected error, got nil")
			}
		})
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	if _, err := ParseJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ParseJSON() expected error for missing file")
	}
}

func TestGetParser(t *testing.T) {
	for _, source := range []string{"json", "xlsx"} {
		if _, err := GetParser(source); err != nil {
			t.Errorf("GetParser(%q) error = %v", source, err)
		}
	}

	if _, err := GetParser("csv"); err == nil {
		t.Error("GetParser(\"csv\") expected error for unregistered source")
	}
}

func TestParseFileArg(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedFormat string
		expectedPath   string
	}{
		{
			name:           "with format prefix",
			input:          "xlsx:sales.xlsx",
			expectedFormat: "xlsx",
			expectedPath:   "sales.xlsx",
		},
		{
			name:           "json prefix",
			input:          "json:data/transactions.json",
			expectedFormat: "json",
			expectedPath:   "data/transactions.json",
		},
		{
			name:           "no prefix",
			input:          "transactions.json",
			expectedFormat: "",
			expectedPath:   "transactions.json",
		},
		{
			name:           "unknown prefix treated as path",
			input:          "C:\\data\\sales.xlsx",
			expectedFormat: "",
			expectedPath:   "C:\\data\\sales.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, path := ParseFileArg(tt.input)
			if format != tt.expectedFormat || path != tt.expectedPath {
				t.Errorf("ParseFileArg(%q) = (%q, %q), want (%q, %q)",
					tt.input, format, path, tt.expectedFormat, tt.expectedPath)
			}
		})
	}
}
