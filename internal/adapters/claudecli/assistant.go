package claudecli

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"daybook/internal/ports"
)

// Assistant implements ports.Assistant using the Claude Code CLI.
type Assistant struct {
	model string
}

var _ ports.Assistant = (*Assistant)(nil)

// Option configures the Assistant
type Option func(*Assistant)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// NewAssistant creates a new Claude CLI assistant
func NewAssistant(opts ...Option) *Assistant {
	a := &Assistant{
		model: "haiku", // Default to haiku for speed
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	IsError   bool   `json:"is_error"`
	Result    string `json:"result"`
	SessionID string `json:"session_id"`
}

// Ask answers a question about the journal, grounding the answer in the
// given entries (most recent last).
func (a *Assistant) Ask(question string, entries []ports.EntryContext) (string, error) {
	prompt := buildAskPrompt(question, entries)

	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", a.model,
	}

	cmd := exec.Command("claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("claude CLI error: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}

	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}

	return cleanAnswer(response.Result), nil
}

func buildAskPrompt(question string, entries []ports.EntryContext) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("\n### Entry %s\n%s\n", e.Date, e.Content))
	}

	return fmt.Sprintf(`You are helping someone reflect on their personal journal.

Question: "%s"

Journal entries, oldest first:
%s

Answer the question using only what the entries say. Mention entry dates
when they support the answer. If the entries do not contain enough
information, say so plainly. Answer in plain text, no markdown.`, question, b.String())
}

// cleanAnswer strips a surrounding markdown code fence if the model added
// one despite the plain-text instruction.
func cleanAnswer(result string) string {
	result = strings.TrimSpace(result)
	if !strings.HasPrefix(result, "```") {
		return result
	}
	lines := strings.Split(result, "\n")
	if len(lines) < 2 {
		return result
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	}
	return result
}

// IsAvailable checks if the claude CLI is installed and accessible
func (a *Assistant) IsAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}
