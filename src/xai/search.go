package xai

import (
	"math"
	"strings"
	"time"
)

// ToolType names a built-in server-side tool of the Responses API
type ToolType string

const (
	ToolXSearch   ToolType = "x_search"
	ToolWebSearch ToolType = "web_search"
)

// MaxHandles is the largest handle allowlist the x_search tool accepts
const MaxHandles = 10

// MaxHours is the widest time window a time.Duration can hold
const MaxHours = math.MaxInt64 / int64(time.Hour)

// DateLayout is the timestamp format of from_date and to_date
const DateLayout = "2006-01-02T15:04:05Z"

// nowFunc is replaced in tests
var nowFunc = time.Now

// SearchToolConfig is the parameter object of a search tool
type SearchToolConfig struct {
	Type            ToolType `json:"type"`
	AllowedXHandles []string `json:"allowed_x_handles,omitempty"`
	FromDate        string   `json:"from_date,omitempty"`
	ToDate          string   `json:"to_date,omitempty"`
}

// BuildSearchConfig builds the x_search tool config.
// Handles beyond MaxHandles are dropped and leading '@' is stripped.
// A nil hours leaves the date range to the API defaults. Zero or negative
// hours are passed through and yield a degenerate or inverted range;
// windows beyond MaxHours are clamped to MaxHours.
func BuildSearchConfig(handles []string, hours *int) SearchToolConfig {
	cfg := SearchToolConfig{Type: ToolXSearch}

	if len(handles) > 0 {
		if len(handles) > MaxHandles {
			handles = handles[:MaxHandles]
		}
		cfg.AllowedXHandles = make([]string, len(handles))
		for i, h := range handles {
			cfg.AllowedXHandles[i] = strings.TrimLeft(h, "@")
		}
	}

	if hours != nil {
		to := nowFunc().UTC().Truncate(time.Second)
		h := int64(*hours)
		if h > MaxHours {
			h = MaxHours
		}
		from := to.Add(-time.Duration(h) * time.Hour)
		cfg.FromDate = from.Format(DateLayout)
		cfg.ToDate = to.Format(DateLayout)
	}

	return cfg
}

// BuildTools returns the tool list for a request: the search tool first,
// followed by web_search when enabled
func BuildTools(search SearchToolConfig, enableWebSearch bool) []SearchToolConfig {
	tools := []SearchToolConfig{search}
	if enableWebSearch {
		tools = append(tools, SearchToolConfig{Type: ToolWebSearch})
	}
	return tools
}
