package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/statgen"
)

var testProfile = cards.Profile{Name: "Ana", Age: 25, Profession: "Developer", MaritalStatus: "Solteiro(a)"}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func newTestClient(t *testing.T, srv *httptest.Server, fallback ...string) *Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(srv.Client(), Config{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		Model:          "primary",
		FallbackModels: fallback,
	}, logger)
}

func TestGenerate_Success(t *testing.T) {
	var gotModel, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model
		if len(req.Messages) != 2 {
			t.Errorf("got %d messages, want 2", len(req.Messages))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody(`{"attr_0":80,"attr_1":61,"attr_2":40,"attr_3":33,"attr_4":95,"specialAbility":"Café no sangue"}`))
	}))
	defer srv.Close()

	d, err := newTestClient(t, srv).Generate(context.Background(), statgen.BuildPrompt(testProfile))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if gotModel != "primary" {
		t.Errorf("model = %q", gotModel)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	want := []int{80, 61, 40, 33, 95}
	for i, v := range d.Values {
		if v == nil || *v != want[i] {
			t.Errorf("value %d = %v, want %d", i, v, want[i])
		}
	}
	if d.SpecialAbility != "Café no sangue" {
		t.Errorf("ability = %q", d.SpecialAbility)
	}
}

func TestGenerate_FallsBackToNextModel(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		calls = append(calls, req.Model)
		w.Header().Set("Content-Type", "application/json")
		if req.Model == "primary" {
			_, _ = io.WriteString(w, completionBody("desculpe, não sei"))
			return
		}
		_, _ = io.WriteString(w, completionBody(`{"attr_0":1,"attr_1":2,"attr_2":3,"attr_3":4,"attr_4":5,"specialAbility":"ok"}`))
	}))
	defer srv.Close()

	d, err := newTestClient(t, srv, "backup").Generate(context.Background(), statgen.BuildPrompt(testProfile))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(calls) != 2 || calls[1] != "backup" {
		t.Errorf("calls = %v", calls)
	}
	if d.Values[4] == nil || *d.Values[4] != 5 {
		t.Errorf("value 4 = %v", d.Values[4])
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), statgen.BuildPrompt(testProfile))
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		wantValues  []any // int or nil
		wantAbility string
	}{
		{
			name:        "fenced payload",
			content:     "```json\n{\"attr_0\":10,\"attr_1\":20,\"attr_2\":30,\"attr_3\":40,\"attr_4\":50,\"specialAbility\":\"x\"}\n```",
			wantValues:  []any{10, 20, 30, 40, 50},
			wantAbility: "x",
		},
		{
			name:       "missing and wrong types",
			content:    `{"attr_0":"80","attr_1":72.6,"attr_3":null,"attr_4":-3,"specialAbility":7}`,
			wantValues: []any{nil, 73, nil, nil, -3},
		},
		{
			name:    "not json",
			content: "Energia: 80",
			wantErr: true,
		},
		{
			name:    "array",
			content: `[1,2,3]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDraft(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			for i, want := range tt.wantValues {
				got := d.Values[i]
				switch w := want.(type) {
				case nil:
					if got != nil {
						t.Errorf("value %d = %d, want nil", i, *got)
					}
				case int:
					if got == nil || *got != w {
						t.Errorf("value %d = %v, want %d", i, got, w)
					}
				}
			}
			if d.SpecialAbility != tt.wantAbility {
				t.Errorf("ability = %q, want %q", d.SpecialAbility, tt.wantAbility)
			}
		})
	}
}
