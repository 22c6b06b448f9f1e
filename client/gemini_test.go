package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiProviderGenerate(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Use the green bin."}},
				},
			}},
		})
	}))
	defer srv.Close()

	provider := NewGeminiProvider("key-1")
	provider.BaseURL = srv.URL

	history := []ChatMessage{
		{Role: "model", Text: "Hello!"},
		{Role: "model", Text: "Thinking...", Provisional: true},
	}
	text, err := provider.Generate(history, "where does glass go?", "pt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Use the green bin." {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(gotPath, ":generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.SystemInstruction == nil || !strings.Contains(gotBody.SystemInstruction.Parts[0].Text, "Portuguese") {
		t.Error("system instruction must carry the language name")
	}
	// history minus the provisional entry, plus the new user turn
	if len(gotBody.Contents) != 2 {
		t.Fatalf("contents = %d", len(gotBody.Contents))
	}
	if last := gotBody.Contents[1]; last.Role != "user" || last.Parts[0].Text != "where does glass go?" {
		t.Errorf("last content = %+v", last)
	}
}

func TestGeminiProviderNoKey(t *testing.T) {
	provider := &GeminiProvider{}
	if _, err := provider.Generate(nil, "hi", "en"); err == nil {
		t.Fatal("missing key must error")
	}
}
