package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"html", "dot", "svg", "png", "term"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("validateFormat should reject unsupported formats")
	}
}

func TestCollectAttrs(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	cmd := c.renderCommand()

	if err := cmd.Flags().Set("min", "3"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("exclude", "Stubs,Drafts"); err != nil {
		t.Fatal(err)
	}

	attrs := collectAttrs(cmd)
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2: %v", len(attrs), attrs)
	}
	if attrs["min"] != "3" || attrs["exclude"] != "Stubs,Drafts" {
		t.Errorf("attrs = %v", attrs)
	}
	if _, ok := attrs["max"]; ok {
		t.Error("unset flags must not appear as attributes")
	}
}

func TestJoinAttrs(t *testing.T) {
	got := joinAttrs(map[string]string{"exclude": "Stubs", "min": "2"})
	want := `min="2" exclude="Stubs"`
	if got != want {
		t.Errorf("joinAttrs = %q, want %q", got, want)
	}
}

func TestRenderCommandRequiresSource(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render"})

	if err := root.Execute(); err == nil {
		t.Error("render without --input or --mongo-uri should fail")
	}
}

func TestRenderCommandHTMLToFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "counts.json")
	data := `[{"name":"Rivers","count":14},{"name":"Boats","count":3}]`
	if err := os.WriteFile(input, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "cloud.html")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "-i", input, "-o", output, "--no-cache", "--seed", "1"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	fragment, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`class="tagcloud"`, "Rivers", "Boats"} {
		if !strings.Contains(string(fragment), want) {
			t.Errorf("fragment missing %q:\n%s", want, fragment)
		}
	}
}

func TestRenderCommandDOT(t *testing.T) {
	input := filepath.Join(t.TempDir(), "counts.json")
	data := `[{"name":"Rivers","count":14}]`
	if err := os.WriteFile(input, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "cloud.dot")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "-i", input, "-o", output, "-f", "dot"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	dotSrc, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dotSrc), "graph cloud {") {
		t.Errorf("unexpected DOT output:\n%s", dotSrc)
	}
}
