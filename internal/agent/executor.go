package agent

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"velocilector/internal/database"
)

const (
	shellTimeout  = 15 * time.Second
	httpTimeout   = 10 * time.Second
	maxOutputSize = 16 * 1024
	maxQueryRows  = 50
)

// StepStatus annotates one executed action so the admin panel can show
// which step failed without losing prior successes.
type StepStatus string

const (
	StepSuccess StepStatus = "success"
	StepWarning StepStatus = "warning"
	StepError   StepStatus = "error"
)

// StepResult is the outcome of one executed action
type StepResult struct {
	Action Action     `json:"action"`
	Status StepStatus `json:"status"`
	Output string     `json:"output"`
}

// RunResult is a full assistant exchange: the executed steps and the
// model's final free-text answer.
type RunResult struct {
	Steps  []StepResult `json:"steps"`
	Answer string       `json:"answer"`
}

// Executor drives the bounded interpreter loop: ask the model, parse
// tagged actions from the reply, execute each behind its guard, feed the
// results back, and stop at a reply with no actions or at the step budget.
type Executor struct {
	llm        *LLMClient
	db         *database.DB
	root       string
	apiBaseURL string
	maxSteps   int
	httpClient *http.Client
}

// NewExecutor creates an executor sandboxed to the given project root
func NewExecutor(llm *LLMClient, db *database.DB, root, apiBaseURL string, maxSteps int) *Executor {
	return &Executor{
		llm:        llm,
		db:         db,
		root:       root,
		apiBaseURL: apiBaseURL,
		maxSteps:   maxSteps,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

const systemPrompt = `You are a coding assistant for this project. To inspect or change it,
emit actions as JSON inside fenced blocks:

` + "```action\n" + `{"action": "readFile", "path": "internal/models/content.go"}
` + "```" + `

Available actions: readFile {path}, editFile {path, content},
searchFiles {pattern}, httpRequest {method, url, body} (relative /api/ only),
dbQuery {sql} (SELECT only), validateCode {}.
Paths are relative to the project root. A reply without action blocks is
treated as your final answer.`

// Run drives the loop for one admin prompt
func (e *Executor) Run(ctx context.Context, prompt string) (*RunResult, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}

	result := &RunResult{}
	for step := 0; step < e.maxSteps; step++ {
		reply, err := e.llm.Complete(ctx, messages)
		if err != nil {
			return result, err
		}

		actions := ParseActions(reply)
		if len(actions) == 0 {
			result.Answer = reply
			return result, nil
		}

		messages = append(messages, Message{Role: "assistant", Content: reply})

		var observations strings.Builder
		for _, action := range actions {
			stepResult := e.execute(ctx, action)
			result.Steps = append(result.Steps, stepResult)
			log.Printf("Agent step %s: %s", action.Type, stepResult.Status)
			fmt.Fprintf(&observations, "[%s %s]\n%s\n", action.Type, stepResult.Status, stepResult.Output)
		}
		messages = append(messages, Message{Role: "user", Content: observations.String()})
	}

	result.Answer = "Step budget exhausted before the assistant produced a final answer."
	return result, nil
}

// execute runs one action behind its guard. Guard rejections come back as
// explanatory errors, never as executed statements.
func (e *Executor) execute(ctx context.Context, action Action) StepResult {
	var output string
	var err error

	switch action.Type {
	case ActionReadFile:
		output, err = e.readFile(action.Path)
	case ActionEditFile:
		output, err = e.editFile(action.Path, action.Content)
	case ActionSearchFiles:
		output, err = e.searchFiles(ctx, action.Pattern)
	case ActionHTTPRequest:
		output, err = e.httpRequest(ctx, action.Method, action.URL, action.Body)
	case ActionDBQuery:
		output, err = e.dbQuery(action.SQL)
	case ActionValidateCode:
		output, err = e.validateCode(ctx)
	default:
		err = fmt.Errorf("unknown action %q", action.Type)
	}

	if err != nil {
		return StepResult{Action: action, Status: StepError, Output: err.Error()}
	}
	status := StepSuccess
	if output == "" {
		status = StepWarning
		output = "(no output)"
	}
	return StepResult{Action: action, Status: status, Output: truncate(output)}
}

func (e *Executor) readFile(path string) (string, error) {
	resolved, err := ResolveWithinRoot(e.root, path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (e *Executor) editFile(path, content string) (string, error) {
	resolved, err := ResolveWithinRoot(e.root, path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(resolved, []byte(content), 0644); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %d bytes to %s", len(content), path), nil
}

func (e *Executor) searchFiles(ctx context.Context, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("empty search pattern")
	}

	cmdCtx, cancel := context.WithTimeout(ctx, shellTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "grep", "-rn", "--include=*.go", "--include=*.sql", pattern, ".")
	cmd.Dir = e.root
	out, err := cmd.Output()
	if err != nil {
		// grep exits 1 on no matches
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "no matches", nil
		}
		return "", err
	}
	return string(out), nil
}

func (e *Executor) httpRequest(ctx context.Context, method, rawURL, body string) (string, error) {
	if err := CheckAPIPath(rawURL); err != nil {
		return "", err
	}
	if method == "" {
		method = http.MethodGet
	}

	reqCtx, cancel := context.WithTimeout(ctx, httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, e.apiBaseURL+rawURL, strings.NewReader(body))
	if err != nil {
		return "", err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxOutputSize))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("HTTP %d\n%s", resp.StatusCode, respBody), nil
}

func (e *Executor) dbQuery(query string) (string, error) {
	if err := CheckSelectOnly(query); err != nil {
		return "", err
	}

	rows, err := e.db.DB.Query(query)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(columns, " | "))
	sb.WriteString("\n")

	count := 0
	for rows.Next() && count < maxQueryRows {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return "", err
		}
		cells := make([]string, len(columns))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				cells[i] = string(b)
			} else {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		count++
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	sb.WriteString(fmt.Sprintf("(%d rows)", count))
	return sb.String(), nil
}

func (e *Executor) validateCode(ctx context.Context) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, shellTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "go", "vet", "./...")
	cmd.Dir = e.root
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return "", fmt.Errorf("validation failed:\n%s", truncate(string(out)))
		}
		return "", err
	}
	if len(out) == 0 {
		return "validation passed", nil
	}
	return string(out), nil
}

func truncate(s string) string {
	if len(s) <= maxOutputSize {
		return s
	}
	return s[:maxOutputSize] + "\n... (truncated)"
}
