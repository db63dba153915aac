package agent

import (
	"encoding/json"
	"strings"
)

// ActionType identifies one capability of the coding assistant
type ActionType string

const (
	ActionReadFile     ActionType = "readFile"
	ActionEditFile     ActionType = "editFile"
	ActionSearchFiles  ActionType = "searchFiles"
	ActionHTTPRequest  ActionType = "httpRequest"
	ActionDBQuery      ActionType = "dbQuery"
	ActionValidateCode ActionType = "validateCode"
)

// Action is one tagged instruction parsed from the model's reply. Fields
// beyond Type are interpreted per action; unused ones stay empty.
type Action struct {
	Type    ActionType `json:"action"`
	Path    string     `json:"path,omitempty"`
	Content string     `json:"content,omitempty"`
	Pattern string     `json:"pattern,omitempty"`
	Method  string     `json:"method,omitempty"`
	URL     string     `json:"url,omitempty"`
	Body    string     `json:"body,omitempty"`
	SQL     string     `json:"sql,omitempty"`
}

// IsValid reports whether t is a known action type
func (t ActionType) IsValid() bool {
	switch t {
	case ActionReadFile, ActionEditFile, ActionSearchFiles,
		ActionHTTPRequest, ActionDBQuery, ActionValidateCode:
		return true
	}
	return false
}

// ParseActions extracts tagged actions from a model reply. Actions arrive
// as JSON objects inside fenced ```action blocks; replies with no such
// block are treated as a final answer with no actions.
func ParseActions(reply string) []Action {
	var actions []Action

	rest := reply
	for {
		start := strings.Index(rest, "```action")
		if start < 0 {
			break
		}
		rest = rest[start+len("```action"):]
		end := strings.Index(rest, "```")
		if end < 0 {
			break
		}
		block := strings.TrimSpace(rest[:end])
		rest = rest[end+3:]

		var action Action
		if err := json.Unmarshal([]byte(block), &action); err != nil {
			continue
		}
		if action.Type.IsValid() {
			actions = append(actions, action)
		}
	}

	return actions
}
