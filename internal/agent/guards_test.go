package agent

import (
	"path/filepath"
	"testing"
)

func TestResolveWithinRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "simple relative path", path: "internal/models/content.go", wantErr: false},
		{name: "dot path", path: "./go.mod", wantErr: false},
		{name: "parent escape", path: "../secrets.txt", wantErr: true},
		{name: "nested parent escape", path: "internal/../../etc/passwd", wantErr: true},
		{name: "absolute path", path: "/etc/passwd", wantErr: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveWithinRoot(root, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveWithinRoot(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil && !filepath.IsAbs(resolved) {
				t.Errorf("ResolveWithinRoot(%q) = %q, want absolute path", tt.path, resolved)
			}
		})
	}
}

func TestCheckSelectOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "plain select", query: "SELECT id, title FROM contents", wantErr: false},
		{name: "select with where", query: "select * from sessions where is_active = true", wantErr: false},
		{name: "trailing semicolon", query: "SELECT 1;", wantErr: false},
		{name: "insert", query: "INSERT INTO admins VALUES (1)", wantErr: true},
		{name: "update disguised", query: "SELECT 1; UPDATE admins SET password_hash = 'x'", wantErr: true},
		{name: "delete subclause", query: "select * from contents where id in (delete from contents)", wantErr: true},
		{name: "drop", query: "DROP TABLE contents", wantErr: true},
		{name: "pragma", query: "PRAGMA table_info(admins)", wantErr: true},
		{name: "empty", query: "", wantErr: true},
		{name: "column named updated_at is fine", query: "SELECT updated_at FROM contents", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSelectOnly(tt.query)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckSelectOnly(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			}
		})
	}
}

func TestCheckAPIPath(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "api path", url: "/api/content/lectura/ninos/1", wantErr: false},
		{name: "api admin path", url: "/api/admin/results", wantErr: false},
		{name: "absolute url", url: "https://evil.example/api/x", wantErr: true},
		{name: "protocol relative", url: "//evil.example/api/x", wantErr: true},
		{name: "non api path", url: "/admin/login", wantErr: true},
		{name: "dot dot traversal", url: "/api/../internal", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAPIPath(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckAPIPath(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestParseActions(t *testing.T) {
	reply := "Let me look at the model first.\n" +
		"```action\n{\"action\": \"readFile\", \"path\": \"internal/models/content.go\"}\n```\n" +
		"and search for usages:\n" +
		"```action\n{\"action\": \"searchFiles\", \"pattern\": \"ContentRecord\"}\n```\n"

	actions := ParseActions(reply)
	if len(actions) != 2 {
		t.Fatalf("ParseActions() returned %d actions, want 2", len(actions))
	}
	if actions[0].Type != ActionReadFile || actions[0].Path != "internal/models/content.go" {
		t.Errorf("first action = %+v", actions[0])
	}
	if actions[1].Type != ActionSearchFiles || actions[1].Pattern != "ContentRecord" {
		t.Errorf("second action = %+v", actions[1])
	}

	if got := ParseActions("Here is my final answer, no actions."); len(got) != 0 {
		t.Errorf("ParseActions() on plain text = %v, want none", got)
	}

	if got := ParseActions("```action\n{\"action\": \"formatDisk\"}\n```"); len(got) != 0 {
		t.Errorf("ParseActions() accepted unknown action type: %v", got)
	}
}
