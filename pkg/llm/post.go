package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxResponseBytes caps how much of an answer is read. Verdicts and
// extractions are a few KB.
const maxResponseBytes = 4 << 20

// postJSON sends payload as JSON and decodes a 200 answer into out. Any
// other status becomes a *StatusError carrying the API's own message.
func postJSON(ctx context.Context, client *http.Client, backend, url string, header http.Header, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", backend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", backend, err)
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", backend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", backend, err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Backend: backend, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", backend, err)
	}
	return nil
}

// errorMessage reads the {"error": {...}} envelope Anthropic, OpenAI and
// Gemini share, prefixed with its type or status. Anything else is
// returned verbatim.
func errorMessage(raw []byte) string {
	var env struct {
		Error struct {
			Type    string `json:"type"`
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Error.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	kind := env.Error.Type
	if kind == "" {
		kind = env.Error.Status
	}
	if kind == "" {
		return env.Error.Message
	}
	return kind + ": " + env.Error.Message
}
