package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/pkg/llm"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n[1,2]\n```  ", want: `[1,2]`},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, llm.StripFences(tt.in))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, llm.DecodeJSON("```json\n{\"name\":\"kettle\"}\n```", &out))
	assert.Equal(t, "kettle", out.Name)

	err := llm.DecodeJSON("", &out)
	require.Error(t, err)

	err = llm.DecodeJSON("sorry, I can't help", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing model JSON")
}

func TestStatusError_RateLimited(t *testing.T) {
	t.Parallel()

	assert.True(t, (&llm.StatusError{StatusCode: http.StatusTooManyRequests}).RateLimited())
	assert.True(t, (&llm.StatusError{StatusCode: http.StatusForbidden, Message: "Quota exceeded"}).RateLimited())
	assert.False(t, (&llm.StatusError{StatusCode: http.StatusInternalServerError, Message: "boom"}).RateLimited())
}

func TestAnthropicBackend_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "anthropic", llm.NewAnthropicBackend().Name())
}

func TestAnthropicBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"content": [{"type": "text", "text": "{\"name\":\"kettle\"}"}],
		"model": "claude-haiku-4-5",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		req        llm.Request
		wantErr    bool
		wantErrMsg string
		wantStatus int
		wantResp   string
		wantUsage  int
	}{
		{
			name:   "successful generation",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Contains(t, body["system"], "JSON")

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req:       llm.Request{Prompt: "extract", Format: llm.FormatJSON, MaxTokens: 50},
			wantResp:  `{"name":"kettle"}`,
			wantUsage: 15,
		},
		{
			name:       "missing API key",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			req:        llm.Request{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "api key is not set",
		},
		{
			name:   "rate limited 429",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
			},
			req:        llm.Request{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "rate_limit_error",
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:   "invalid JSON response",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			req:        llm.Request{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "parsing anthropic",
		},
		{
			name:   "empty content array",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"content":[],"model":"test","usage":{}}`))
			},
			req:        llm.Request{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := llm.NewAnthropicBackend(
				llm.WithAnthropicEndpoint(srv.URL),
				llm.WithAnthropicHTTPClient(srv.Client()),
				llm.WithAnthropicAPIKey(tt.apiKey),
			)

			resp, err := backend.Generate(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				if tt.wantStatus != 0 {
					var se *llm.StatusError
					require.True(t, errors.As(err, &se))
					assert.Equal(t, tt.wantStatus, se.StatusCode)
					assert.True(t, se.RateLimited())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
		})
	}
}

func TestOpenAICompatBackend_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		req        llm.Request
		wantErr    bool
		wantErrMsg string
		wantResp   string
	}{
		{
			name: "json mode with system message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				raw, _ := io.ReadAll(r.Body)
				var body struct {
					Messages []struct {
						Role string `json:"role"`
					} `json:"messages"`
					ResponseFormat struct {
						Type string `json:"type"`
					} `json:"response_format"`
				}
				assert.NoError(t, json.Unmarshal(raw, &body))
				assert.Equal(t, "json_object", body.ResponseFormat.Type)
				if assert.Len(t, body.Messages, 2) {
					assert.Equal(t, "system", body.Messages[0].Role)
				}

				_, _ = w.Write([]byte(`{
					"choices": [{"message": {"role": "assistant", "content": "ok"}}],
					"model": "gpt-4o-mini",
					"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
				}`))
			},
			req:      llm.Request{Prompt: "hi", SystemMsg: "be terse", Format: llm.FormatJSON},
			wantResp: "ok",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"error": {"message": "upstream down"}}`))
			},
			req:        llm.Request{Prompt: "hi"},
			wantErr:    true,
			wantErrMsg: "upstream down",
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices": [], "model": "x"}`))
			},
			req:        llm.Request{Prompt: "hi"},
			wantErr:    true,
			wantErrMsg: "empty choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := llm.NewOpenAICompatBackend(srv.URL+"/", "gpt-4o-mini",
				llm.WithOpenAICompatHTTPClient(srv.Client()),
				llm.WithOpenAICompatAPIKey("sk-test"),
			)

			resp, err := backend.Generate(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, 4, resp.Usage.TotalTokens)
		})
	}
}

func TestOllamaBackend_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "json", body["format"])
		assert.Equal(t, false, body["stream"])

		_, _ = w.Write([]byte(`{"model":"llama3.2","response":"{}","prompt_eval_count":7,"eval_count":2}`))
	}))
	defer srv.Close()

	backend := llm.NewOllamaBackend(srv.URL, "llama3.2", llm.WithOllamaHTTPClient(srv.Client()))
	assert.Equal(t, "ollama", backend.Name())

	resp, err := backend.Generate(context.Background(), llm.Request{Prompt: "x", Format: llm.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, "{}", resp.Content)
	assert.Equal(t, 9, resp.Usage.TotalTokens)
}

func TestOllamaBackend_Generate_Error(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`model not found`))
	}))
	defer srv.Close()

	backend := llm.NewOllamaBackend(srv.URL, "missing", llm.WithOllamaHTTPClient(srv.Client()))
	_, err := backend.Generate(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestGeminiBackend_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantErrMsg string
		wantResp   string
	}{
		{
			name: "successful generation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
				assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))

				var body struct {
					SystemInstruction struct {
						Parts []struct {
							Text string `json:"text"`
						} `json:"parts"`
					} `json:"systemInstruction"`
					GenerationConfig struct {
						ResponseMimeType string `json:"responseMimeType"`
					} `json:"generationConfig"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "application/json", body.GenerationConfig.ResponseMimeType)
				if assert.Len(t, body.SystemInstruction.Parts, 1) {
					assert.Equal(t, "sys", body.SystemInstruction.Parts[0].Text)
				}

				_, _ = w.Write([]byte(`{
					"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"a\":"}, {"text": "1}"}]}}],
					"modelVersion": "gemini-test",
					"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 2, "totalTokenCount": 6}
				}`))
			},
			wantResp: `{"a":1}`,
		},
		{
			name: "quota exhausted",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
			},
			wantErr:    true,
			wantErrMsg: "RESOURCE_EXHAUSTED",
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"candidates": []}`))
			},
			wantErr:    true,
			wantErrMsg: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := llm.NewGeminiBackend(
				llm.WithGeminiEndpoint(srv.URL),
				llm.WithGeminiModel("gemini-test"),
				llm.WithGeminiAPIKey("g-key"),
				llm.WithGeminiHTTPClient(srv.Client()),
			)

			resp, err := backend.Generate(context.Background(), llm.Request{
				Prompt:    "extract",
				SystemMsg: "sys",
				Format:    llm.FormatJSON,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, 6, resp.Usage.TotalTokens)
		})
	}
}
