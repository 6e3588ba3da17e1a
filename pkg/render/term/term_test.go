package term

import (
	"strings"
	"testing"

	"github.com/mhelmke/wikicloud/pkg/cloud"
)

func entry(name string, count, size int) cloud.Entry {
	return cloud.Entry{Category: cloud.Category{Name: name, Count: count}, FontPercent: size}
}

func TestRenderContainsAllEntries(t *testing.T) {
	cfg := cloud.ParseConfig(nil)
	out := Render([]cloud.Entry{
		entry("Rivers", 14, 200),
		entry("Fly_Fishing", 3, 80),
	}, cfg, Options{})

	if !strings.Contains(out, "Rivers") {
		t.Errorf("missing Rivers:\n%s", out)
	}
	if !strings.Contains(out, "Fly Fishing") {
		t.Errorf("underscores should display as spaces:\n%s", out)
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	cfg := cloud.ParseConfig(nil)
	entries := []cloud.Entry{
		entry("Aaaaaaaaaa", 1, 100),
		entry("Bbbbbbbbbb", 1, 100),
		entry("Cccccccccc", 1, 100),
	}

	out := Render(entries, cfg, Options{Width: 15})
	if got := len(strings.Split(out, "\n")); got < 2 {
		t.Errorf("narrow width should wrap onto multiple lines, got %d line(s):\n%s", got, out)
	}

	out = Render(entries, cfg, Options{Width: 200})
	if got := len(strings.Split(out, "\n")); got != 1 {
		t.Errorf("wide width should fit one line, got %d:\n%s", got, out)
	}
}

func TestRenderShowCounts(t *testing.T) {
	cfg := cloud.ParseConfig(nil)
	out := Render([]cloud.Entry{entry("Rivers", 14, 200)}, cfg, Options{ShowCounts: true})
	if !strings.Contains(out, "14") {
		t.Errorf("count missing:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(nil, cloud.ParseConfig(nil), Options{}); out != "" {
		t.Errorf("empty cloud should render as empty string, got %q", out)
	}
}

func TestStyleForBounds(t *testing.T) {
	cfg := cloud.ParseConfig(map[string]string{"minsize": "80", "maxsize": "200"})

	// Every percentage in range must map to some tier without panicking.
	for p := cfg.MinFontPercent; p <= cfg.MaxFontPercent; p++ {
		_ = styleFor(p, cfg)
	}

	// Degenerate config (min == max) takes the middle tier.
	flat := cloud.ParseConfig(map[string]string{"minsize": "100", "maxsize": "100"})
	_ = styleFor(100, flat)
}
