package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider calls the Gemini generateContent API directly, without
// going through the backend. It is the middle step of the assistant's
// fallback chain for builds shipped with an embedded API key.
type GeminiProvider struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		APIKey:  apiKey,
		BaseURL: defaultGeminiURL,
		Model:   "gemini-2.5-flash",
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

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

func (p *GeminiProvider) Generate(history []ChatMessage, message, language string) (string, error) {
	if p.APIKey == "" {
		return "", errors.New("no API key configured")
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		if m.Provisional {
			continue
		}
		contents = append(contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: directSystemPrompt(language)}}},
		Contents:          contents,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.BaseURL, p.Model, p.APIKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := p.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini error: status %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func directSystemPrompt(language string) string {
	name := map[string]string{
		"pt": "Portuguese (Guinea-Bissau context)",
		"fr": "French",
	}[language]
	if name == "" {
		name = "English"
	}
	return fmt.Sprintf(`You are the Recolhe+ Assistant, powered by Renoverde, for a smart waste collection platform in Guinea-Bissau.
Your goal is to help users recycle, schedule pickups, and understand their impact.
User location: Bissau. Currency: XOF (CFA Franc).
EcoCoin Rate: 1 Coin = 10 XOF.

Current Language: %s.
Always respond in %s.
Keep responses concise and friendly.`, name, name)
}
