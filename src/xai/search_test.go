package xai

import (
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestBuildSearchConfigHandles(t *testing.T) {
	handles := []string{"@a", "b", "@c", "d", "e", "f", "g", "h", "i", "j", "k"}

	cfg := BuildSearchConfig(handles, nil)

	if cfg.Type != ToolXSearch {
		t.Errorf("Type = %q, want %q", cfg.Type, ToolXSearch)
	}
	if len(cfg.AllowedXHandles) != MaxHandles {
		t.Fatalf("len(AllowedXHandles) = %d, want %d", len(cfg.AllowedXHandles), MaxHandles)
	}
	want := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, h := range cfg.AllowedXHandles {
		if strings.HasPrefix(h, "@") {
			t.Errorf("AllowedXHandles[%d] = %q still has '@'", i, h)
		}
		if h != want[i] {
			t.Errorf("AllowedXHandles[%d] = %q, want %q", i, h, want[i])
		}
	}
	if handles[0] != "@a" {
		t.Errorf("input slice was modified: %v", handles)
	}
}

func TestBuildSearchConfigNoHandles(t *testing.T) {
	cfg := BuildSearchConfig(nil, nil)

	if cfg.AllowedXHandles != nil {
		t.Errorf("AllowedXHandles = %v, want nil", cfg.AllowedXHandles)
	}
	if cfg.FromDate != "" || cfg.ToDate != "" {
		t.Errorf("date range = %q..%q, want unset", cfg.FromDate, cfg.ToDate)
	}
}

func TestBuildSearchConfigHours(t *testing.T) {
	cfg := BuildSearchConfig(nil, intPtr(24))

	from, err := time.Parse(DateLayout, cfg.FromDate)
	if err != nil {
		t.Fatalf("FromDate %q: %v", cfg.FromDate, err)
	}
	to, err := time.Parse(DateLayout, cfg.ToDate)
	if err != nil {
		t.Fatalf("ToDate %q: %v", cfg.ToDate, err)
	}
	if d := to.Sub(from); d != 24*time.Hour {
		t.Errorf("to - from = %v, want 24h", d)
	}
	if len(cfg.FromDate) != len("2006-01-02T15:04:05Z") || !strings.HasSuffix(cfg.ToDate, "Z") {
		t.Errorf("unexpected format: %q / %q", cfg.FromDate, cfg.ToDate)
	}
}

func TestBuildSearchConfigFixedClock(t *testing.T) {
	orig := nowFunc
	defer func() { nowFunc = orig }()
	loc := time.FixedZone("JST", 9*60*60)
	nowFunc = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 15, 500, loc) }

	tests := []struct {
		hours    int
		from, to string
	}{
		{12, "2026-02-28T12:30:15Z", "2026-03-01T00:30:15Z"},
		{0, "2026-03-01T00:30:15Z", "2026-03-01T00:30:15Z"},
		{-2, "2026-03-01T02:30:15Z", "2026-03-01T00:30:15Z"},
	}
	for _, tt := range tests {
		cfg := BuildSearchConfig([]string{"x"}, intPtr(tt.hours))
		if cfg.FromDate != tt.from || cfg.ToDate != tt.to {
			t.Errorf("hours=%d: got %s..%s, want %s..%s", tt.hours, cfg.FromDate, cfg.ToDate, tt.from, tt.to)
		}
	}
}

func TestBuildSearchConfigHugeWindow(t *testing.T) {
	orig := nowFunc
	defer func() { nowFunc = orig }()
	nowFunc = func() time.Time { return time.Date(2026, 10, 16, 4, 19, 41, 0, time.UTC) }

	cfg := BuildSearchConfig(nil, intPtr(3000000))

	from, err := time.Parse(DateLayout, cfg.FromDate)
	if err != nil {
		t.Fatalf("FromDate %q: %v", cfg.FromDate, err)
	}
	to, err := time.Parse(DateLayout, cfg.ToDate)
	if err != nil {
		t.Fatalf("ToDate %q: %v", cfg.ToDate, err)
	}
	if !from.Before(to) {
		t.Errorf("from %s is not before to %s", cfg.FromDate, cfg.ToDate)
	}
	if want := to.Add(-time.Duration(MaxHours) * time.Hour); !from.Equal(want) {
		t.Errorf("from = %s, want clamped to %s", from, want)
	}
}

func TestBuildSearchConfigStripIdempotent(t *testing.T) {
	cfg := BuildSearchConfig([]string{"openai", "@@xai"}, nil)
	if cfg.AllowedXHandles[0] != "openai" || cfg.AllowedXHandles[1] != "xai" {
		t.Errorf("AllowedXHandles = %v", cfg.AllowedXHandles)
	}
}

func TestBuildTools(t *testing.T) {
	search := SearchToolConfig{Type: ToolXSearch}

	tools := BuildTools(search, false)
	if len(tools) != 1 || tools[0].Type != ToolXSearch {
		t.Errorf("BuildTools(false) = %+v", tools)
	}

	tools = BuildTools(search, true)
	if len(tools) != 2 {
		t.Fatalf("BuildTools(true) len = %d, want 2", len(tools))
	}
	if tools[0].Type != ToolXSearch || tools[1].Type != ToolWebSearch {
		t.Errorf("BuildTools(true) = %+v", tools)
	}
}
