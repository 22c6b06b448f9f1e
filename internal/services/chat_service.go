package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/dto"
)

var ErrNoProvider = errors.New("no AI provider available")

const chatSystemPrompt = `You are the Recolhe+ Assistant, powered by Renoverde, for a smart waste collection platform in Guinea-Bissau.
Your goal is to help users recycle, schedule pickups, and understand their impact.
User location: Bissau. Currency: XOF (CFA Franc).
EcoCoin Rate: 1 Coin = 10 XOF.

Current Language: %s.
Always respond in %s.
Keep responses concise and friendly.`

// ChatService proxies assistant conversations to an AI provider. Gemini
// is tried first, DeepSeek second; the handler turns ErrNoProvider into
// a 500 for the client, which then runs its own fallback.
type ChatService struct {
	cfg *config.Config
}

func NewChatService(cfg *config.Config) *ChatService {
	return &ChatService{cfg: cfg}
}

func (s *ChatService) Generate(req *dto.ChatRequest) (string, error) {
	prompt := SystemPrompt(req.Language)

	if s.cfg.GeminiAPIKey != "" {
		text, err := s.generateGemini(prompt, req.History, req.Message)
		if err == nil {
			return text, nil
		}
		slog.Warn("gemini generation failed", "error", err)
	}

	if s.cfg.DeepSeekAPIKey != "" {
		text, err := s.generateDeepSeek(prompt, req.History, req.Message)
		if err == nil {
			return text, nil
		}
		slog.Warn("deepseek generation failed", "error", err)
	}

	return "", ErrNoProvider
}

// SystemPrompt renders the assistant instruction for a language code.
func SystemPrompt(language string) string {
	langName := LanguageName(language)
	return fmt.Sprintf(chatSystemPrompt, langName, langName)
}

// LanguageName maps a language code to the name used in AI prompts.
func LanguageName(code string) string {
	switch code {
	case "pt":
		return "Portuguese (Guinea-Bissau context)"
	case "fr":
		return "French"
	default:
		return "English"
	}
}

// --- Gemini (generateContent API) ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *ChatService) generateGemini(prompt string, history []dto.ChatTurn, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: prompt}}},
		Contents:          contents,
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.GeminiAPIURL, s.cfg.GeminiModel, s.cfg.GeminiAPIKey)
	raw, err := s.post(url, nil, body)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// --- DeepSeek (OpenAI-compatible chat completions) ---

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model    string            `json:"model"`
	Messages []deepseekMessage `json:"messages"`
}

type deepseekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *ChatService) generateDeepSeek(prompt string, history []dto.ChatTurn, message string) (string, error) {
	messages := make([]deepseekMessage, 0, len(history)+2)
	messages = append(messages, deepseekMessage{Role: "system", Content: prompt})
	for _, turn := range history {
		role := turn.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, deepseekMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, deepseekMessage{Role: "user", Content: message})

	body := deepseekRequest{Model: s.cfg.DeepSeekModel, Messages: messages}
	headers := map[string]string{"Authorization": "Bearer " + s.cfg.DeepSeekAPIKey}
	raw, err := s.post(s.cfg.DeepSeekAPIURL, headers, body)
	if err != nil {
		return "", err
	}

	var resp deepseekResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty deepseek response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *ChatService) post(url string, headers map[string]string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	timeout := s.cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}
	return raw, nil
}
