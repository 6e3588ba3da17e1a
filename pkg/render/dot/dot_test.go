package dot

import (
	"strings"
	"testing"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/title"
)

func entry(name string, count, size int) cloud.Entry {
	return cloud.Entry{Category: cloud.Category{Name: name, Count: count}, FontPercent: size}
}

func TestToDOT(t *testing.T) {
	out := ToDOT([]cloud.Entry{
		entry("Rivers", 14, 200),
		entry("Fly_Fishing", 3, 80),
	}, Options{})

	if !strings.HasPrefix(out, "graph cloud {") {
		t.Errorf("missing graph header:\n%s", out)
	}
	if !strings.Contains(out, `"Rivers" [label="Rivers", fontsize=28.0]`) {
		t.Errorf("Rivers node wrong (200%% of 14pt should be 28pt):\n%s", out)
	}
	if !strings.Contains(out, `"Fly_Fishing" [label="Fly Fishing", fontsize=11.2]`) {
		t.Errorf("Fly_Fishing node wrong (80%% of 14pt should be 11.2pt):\n%s", out)
	}
	if strings.Contains(out, "->") || strings.Contains(out, " -- ") {
		t.Errorf("cloud graph should have no edges:\n%s", out)
	}
}

func TestToDOTWithResolver(t *testing.T) {
	r := title.NewWikiResolver("https://wiki.example.org", "")
	out := ToDOT([]cloud.Entry{
		entry("Rivers", 14, 200),
		entry("Bad|Name", 3, 80),
	}, Options{Resolver: r})

	if !strings.Contains(out, `URL="https://wiki.example.org/wiki/Category:Rivers"`) {
		t.Errorf("missing node URL:\n%s", out)
	}
	if strings.Contains(out, "Bad") {
		t.Errorf("unresolvable entry should be dropped:\n%s", out)
	}
}

func TestToDOTEmpty(t *testing.T) {
	out := ToDOT(nil, Options{})
	if !strings.Contains(out, "graph cloud {") || !strings.Contains(out, "}") {
		t.Errorf("empty cloud should still be a valid graph:\n%s", out)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 120.50 80.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 120.50 80.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="121"`) && !strings.Contains(out, `width="120"`) {
		t.Errorf("pixel width missing: %s", out)
	}
}
