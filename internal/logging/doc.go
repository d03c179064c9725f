// Package logging assembles structured slog loggers and attribute helpers
// used across umascan.
//
// Two output formats are supported: a console handler that renders
// "TIME LEVEL component: message key=value" lines for interactive use, and a
// JSON handler for log files and machine consumption. Corpus-load warnings
// and match diagnostics all flow through loggers built here.
package logging
