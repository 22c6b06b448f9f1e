package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/dto"
)

func chatConfig() *config.Config {
	return &config.Config{
		GeminiModel:   "gemini-2.5-flash",
		DeepSeekModel: "deepseek-chat",
		AITimeout:     5 * time.Second,
	}
}

func TestGenerateUsesGeminiFirst(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Reciclar é fácil!"}},
				},
			}},
		})
	}))
	defer srv.Close()

	cfg := chatConfig()
	cfg.GeminiAPIKey = "key-1"
	cfg.GeminiAPIURL = srv.URL
	svc := NewChatService(cfg)

	text, err := svc.Generate(&dto.ChatRequest{
		History:  []dto.ChatTurn{{Role: "user", Text: "olá"}, {Role: "model", Text: "olá!"}},
		Message:  "como reciclo vidro?",
		Language: "pt",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Reciclar é fácil!" {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if _, ok := gotBody["system_instruction"]; !ok {
		t.Error("gemini request must carry a system_instruction")
	}
}

func TestGenerateFallsBackToDeepSeek(t *testing.T) {
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer gemini.Close()

	var gotAuth string
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	deepseek := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message": map[string]string{"content": "Glass is recyclable."},
			}},
		})
	}))
	defer deepseek.Close()

	cfg := chatConfig()
	cfg.GeminiAPIKey = "key-1"
	cfg.GeminiAPIURL = gemini.URL
	cfg.DeepSeekAPIKey = "key-2"
	cfg.DeepSeekAPIURL = deepseek.URL
	svc := NewChatService(cfg)

	text, err := svc.Generate(&dto.ChatRequest{
		History:  []dto.ChatTurn{{Role: "model", Text: "hi"}},
		Message:  "can I recycle glass?",
		Language: "en",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Glass is recyclable." {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer key-2" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("first message role = %q", gotReq.Messages[0].Role)
	}
	// Gemini's "model" role becomes "assistant" on the OpenAI wire.
	if gotReq.Messages[1].Role != "assistant" {
		t.Errorf("history role = %q", gotReq.Messages[1].Role)
	}
	if last := gotReq.Messages[len(gotReq.Messages)-1]; last.Role != "user" || last.Content != "can I recycle glass?" {
		t.Errorf("last message = %+v", last)
	}
}

func TestGenerateNoProvider(t *testing.T) {
	svc := NewChatService(chatConfig())
	if _, err := svc.Generate(&dto.ChatRequest{Message: "hi"}); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateAllProvidersDown(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	cfg := chatConfig()
	cfg.GeminiAPIKey = "key-1"
	cfg.GeminiAPIURL = down.URL
	cfg.DeepSeekAPIKey = "key-2"
	cfg.DeepSeekAPIURL = down.URL
	svc := NewChatService(cfg)

	if _, err := svc.Generate(&dto.ChatRequest{Message: "hi"}); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("err = %v", err)
	}
}

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt("pt")
	for _, want := range []string{"Recolhe+ Assistant", "Renoverde", "Bissau", "XOF", "1 Coin = 10 XOF", "Portuguese (Guinea-Bissau context)"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(SystemPrompt("fr"), "French") {
		t.Error("fr prompt must name French")
	}
	if !strings.Contains(SystemPrompt("unknown"), "English") {
		t.Error("unknown codes default to English")
	}
}
