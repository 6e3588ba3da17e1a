package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/errors"
	"github.com/mhelmke/wikicloud/pkg/source"
)

func TestReadNormalizesNames(t *testing.T) {
	in := strings.NewReader(`[{"name": "Fly Fishing", "count": 3}]`)
	rows, err := Read(in)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if rows[0].Name != "Fly_Fishing" {
		t.Errorf("Name = %q, want Fly_Fishing", rows[0].Name)
	}
}

func TestReadRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty name", `[{"name": "  ", "count": 1}]`},
		{"negative count", `[{"name": "A", "count": -1}]`},
		{"malformed json", `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.in)); err == nil {
				t.Error("Read should reject this input")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := []cloud.Category{{Name: "Rivers", Count: 14}, {Name: "Boats", Count: 1}}

	var buf bytes.Buffer
	if err := Write(in, &buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %v vs %v", out, in)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")
	if err := os.WriteFile(path, []byte(`[{"name": "Rivers", "count": 14}]`), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	rows, err := src.Categories(context.Background(), source.Query{})
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Rivers" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
