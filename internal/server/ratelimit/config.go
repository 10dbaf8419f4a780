package ratelimit

import (
	"strings"
	"time"
)

// Rule limits one endpoint. Paths ending in "/" match by prefix and share one bucket.
type Rule struct {
	Path   string
	Method string
	Limit  int // requests per Window; 0 is unlimited
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

func (r Rule) burst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// key is the bucket key of a request path under this rule
func (r Rule) key(path string) string {
	if r.Path != "" {
		return r.Path
	}
	return path
}

// Config holds rate limiting configuration.
type Config struct {
	Default Rule
	Rules   []Rule
}

// Enabled reports whether any limit applies
func (c Config) Enabled() bool {
	return c.Default.Limit > 0
}

// NewConfig builds the API limits from a per-minute budget per client. Batch analysis
// gets a tenth of it; health checks are unlimited.
func NewConfig(perMinute, burst int) Config {
	if perMinute <= 0 {
		return Config{}
	}
	batch := max(1, perMinute/10)
	return Config{
		Default: Rule{Limit: perMinute, Window: time.Minute, Burst: burst},
		Rules: []Rule{
			{Path: "/health", Method: "GET", Limit: 0},
			{Path: "/analyze/batch", Method: "POST", Limit: batch, Window: time.Minute, Burst: max(1, burst/10)},
			{Path: "/analyze", Method: "POST", Limit: perMinute, Window: time.Minute, Burst: burst},
			{Path: "/analyze/document", Method: "POST", Limit: perMinute, Window: time.Minute, Burst: burst},
		},
	}
}

// Match returns the rule for a request: an exact path match first, then the longest
// prefix rule, then the default.
func (c Config) Match(path, method string) Rule {
	for _, r := range c.Rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}

	var best *Rule
	for i := range c.Rules {
		r := &c.Rules[i]
		if r.Method != method || !strings.HasSuffix(r.Path, "/") || !strings.HasPrefix(path, r.Path) {
			continue
		}
		if best == nil || len(r.Path) > len(best.Path) {
			best = r
		}
	}
	if best != nil {
		return *best
	}
	return c.Default
}
