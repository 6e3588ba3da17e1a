package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/pipeline"
	"github.com/mhelmke/wikicloud/pkg/source/memory"
	"github.com/mhelmke/wikicloud/pkg/title"
)

func newTestServer(t *testing.T, defaults map[string]string) *httptest.Server {
	t.Helper()
	src := memory.New([]cloud.Category{
		{Name: "Rivers", Count: 14},
		{Name: "Stubs", Count: 40},
		{Name: "Boats", Count: 1},
	})
	resolver := title.NewWikiResolver("https://wiki.example.org", "")
	runner := pipeline.NewRunner(src, resolver, nil, log.New(io.Discard))

	ts := httptest.NewServer(New(runner, log.New(io.Discard), defaults).Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if strings.TrimSpace(body) != "ok" {
		t.Errorf("body = %q", body)
	}
}

func TestCloudRendersFragment(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/cloud?min=2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(body, `class="tagcloud"`) {
		t.Errorf("missing cloud container:\n%s", body)
	}
	if strings.Contains(body, "Boats") {
		t.Errorf("Boats (count 1) should fail min=2:\n%s", body)
	}
}

func TestCloudCacheControl(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, _ := get(t, ts.URL+"/cloud?refresh=600")
	if cc := resp.Header.Get("Cache-Control"); cc != "public, max-age=600" {
		t.Errorf("Cache-Control = %q", cc)
	}

	resp, _ = get(t, ts.URL+"/cloud?refresh=0")
	if cc := resp.Header.Get("Cache-Control"); cc != "" {
		t.Errorf("refresh=0 should not set Cache-Control, got %q", cc)
	}
}

func TestCloudDefaultsAndOverride(t *testing.T) {
	ts := newTestServer(t, map[string]string{"exclude": "Stubs"})

	_, body := get(t, ts.URL+"/cloud")
	if strings.Contains(body, "Stubs") {
		t.Errorf("server default exclude=Stubs should apply:\n%s", body)
	}

	_, body = get(t, ts.URL+"/cloud?exclude=Rivers")
	if !strings.Contains(body, "Stubs") || strings.Contains(body, ">Rivers<") {
		t.Errorf("request exclude should replace the server default:\n%s", body)
	}
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, _ := get(t, ts.URL+"/healthz")
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("response should carry a generated request ID")
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("request ID not echoed: %q", got)
	}
}
