package agent

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// The guards are pure functions so the security boundary of each action
// can be tested without touching the filesystem, the database or the
// network.

var (
	ErrPathOutsideRoot = errors.New("path escapes the project root")
	ErrNotSelectQuery  = errors.New("only SELECT queries are allowed")
	ErrURLNotAllowed   = errors.New("only relative /api/ requests are allowed")
)

// sqlDenylist blocks statements and sub-clauses that mutate or escape.
// Checked as whole words against the lowercased query.
var sqlDenylist = []string{
	"insert", "update", "delete", "drop", "alter", "create", "truncate",
	"replace", "attach", "detach", "pragma", "grant", "revoke", "vacuum",
}

// ResolveWithinRoot cleans a relative path and confirms it stays under
// root, returning the absolute path to operate on.
func ResolveWithinRoot(root, path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", ErrPathOutsideRoot
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root: %w", err)
	}
	joined := filepath.Clean(filepath.Join(absRoot, path))

	if joined != absRoot && !strings.HasPrefix(joined, absRoot+string(filepath.Separator)) {
		return "", ErrPathOutsideRoot
	}
	return joined, nil
}

// CheckSelectOnly verifies a query is a single read-only SELECT
func CheckSelectOnly(query string) error {
	trimmed := strings.TrimSpace(strings.ToLower(query))
	if !strings.HasPrefix(trimmed, "select") {
		return ErrNotSelectQuery
	}
	if strings.ContainsRune(strings.TrimRight(trimmed, "; \t\n"), ';') {
		return ErrNotSelectQuery
	}

	for _, word := range strings.FieldsFunc(trimmed, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '_')
	}) {
		for _, denied := range sqlDenylist {
			if word == denied {
				return ErrNotSelectQuery
			}
		}
	}
	return nil
}

// CheckAPIPath verifies an httpRequest target is a relative /api/ path
func CheckAPIPath(rawURL string) error {
	if strings.Contains(rawURL, "://") || strings.HasPrefix(rawURL, "//") {
		return ErrURLNotAllowed
	}
	if !strings.HasPrefix(rawURL, "/api/") {
		return ErrURLNotAllowed
	}
	if strings.Contains(rawURL, "..") {
		return ErrURLNotAllowed
	}
	return nil
}
