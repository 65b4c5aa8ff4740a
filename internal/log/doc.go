// Package log provides the structured logger construction shared by all
// cohortsim commands. It wraps log/slog with the project's verbosity
// convention: warnings and errors by default, full debug output with
// --verbose.
package log
