package handlers

import (
	"errors"
	"net/http"
	"strings"

	"velocilector/internal/agent"
)

// AgentHandler exposes the bounded coding-assistant loop to the admin
// panel
type AgentHandler struct {
	executor *agent.Executor
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(executor *agent.Executor) *AgentHandler {
	return &AgentHandler{executor: executor}
}

// Chat drives one assistant exchange: the prompt goes through the
// interpreter loop and the response carries per-step annotations plus
// the final answer. Model exhaustion surfaces as 429 when the upstream
// rate-limited, 500 otherwise.
func (h *AgentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		respondWithError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	result, err := h.executor.Run(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, agent.ErrRateLimited) {
			respondWithError(w, http.StatusTooManyRequests, "generative-AI service rate limited")
			return
		}
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
