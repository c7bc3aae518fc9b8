package outliner

import (
	"log/slog"

	"github.com/tsawler/outliner/outline"
)

// WithConfig replaces the extraction settings. Settings not covered by
// the given config keep their zero values, so start from
// outline.DefaultConfig() and change only what you need.
func (s *Source) WithConfig(cfg outline.Config) *Source {
	s.cfg = cfg
	return s
}

// WithLogger sets the logger used for pipeline diagnostics. The
// pipeline logs at debug level only.
func (s *Source) WithLogger(logger *slog.Logger) *Source {
	s.cfg.Logger = logger
	return s
}

// WithMaxLevel caps outline depth. Headings deeper than the cap are
// clamped to it.
func (s *Source) WithMaxLevel(level int) *Source {
	if level > 0 {
		s.cfg.MaxLevel = level
	}
	return s
}
