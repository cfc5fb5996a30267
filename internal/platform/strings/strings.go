// Package strings holds small string helpers used by routing and binding code
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non-whitespace content, otherwise panics naming the value
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like "rasi" or "/rasi/" to "/rasi"; panics on the root path
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Blank reports whether s is empty after trimming whitespace
func Blank(s string) bool { return std.TrimSpace(s) == "" }
