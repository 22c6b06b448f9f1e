package client

import (
	"strconv"
	"sync"
	"time"

	"github.com/renoverde/recolhe-plus/i18n"
)

// DirectProvider is a last-resort text generator used when the backend's
// chat endpoint is unreachable, typically a direct call to an AI API
// with a key embedded in the client build.
type DirectProvider interface {
	Generate(history []ChatMessage, message, language string) (string, error)
}

// Assistant owns the chat transcript. Every Send call ends with a model
// entry in the transcript: backend reply, direct-provider reply, or the
// localized apology. The transcript never dangles on a user message.
type Assistant struct {
	mu       sync.Mutex
	api      *Client
	direct   DirectProvider
	language string
	now      func() time.Time
	messages []ChatMessage
}

func NewAssistant(api *Client, direct DirectProvider, language string) *Assistant {
	a := &Assistant{
		api:      api,
		direct:   direct,
		language: language,
		now:      time.Now,
	}
	a.messages = []ChatMessage{a.modelMessage(i18n.T(language).Assistant.InitialMsg, false)}
	return a
}

// SetLanguage switches the assistant locale. The transcript is kept as
// is; only future canned messages change.
func (a *Assistant) SetLanguage(language string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.language = language
}

// Messages returns a copy of the transcript.
func (a *Assistant) Messages() []ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// Send appends the user's message plus a provisional thinking entry,
// resolves a reply through the fallback chain, and replaces the
// provisional entry with the final text.
func (a *Assistant) Send(text string) ChatMessage {
	a.mu.Lock()
	strings := i18n.T(a.language)

	history := make([]ChatMessage, len(a.messages))
	copy(history, a.messages)

	a.messages = append(a.messages,
		a.userMessage(text),
		a.modelMessage(strings.Assistant.Thinking, true),
	)
	language := a.language
	a.mu.Unlock()

	reply := a.resolve(history, text, language, strings.Assistant.Fallback)

	a.mu.Lock()
	defer a.mu.Unlock()
	final := a.modelMessage(reply, false)
	for i := len(a.messages) - 1; i >= 0; i-- {
		if a.messages[i].Provisional {
			a.messages[i] = final
			return final
		}
	}
	a.messages = append(a.messages, final)
	return final
}

// resolve walks the chain: backend, then direct provider, then apology.
func (a *Assistant) resolve(history []ChatMessage, text, language, apology string) string {
	if reply, err := a.api.Chat(history, text, language); err == nil && reply != "" {
		return reply
	}
	if a.direct != nil {
		if reply, err := a.direct.Generate(history, text, language); err == nil && reply != "" {
			return reply
		}
	}
	return apology
}

func (a *Assistant) userMessage(text string) ChatMessage {
	return ChatMessage{
		ID:        strconv.FormatInt(a.now().UnixNano(), 10),
		Role:      "user",
		Text:      text,
		Timestamp: a.now(),
	}
}

func (a *Assistant) modelMessage(text string, provisional bool) ChatMessage {
	return ChatMessage{
		ID:          strconv.FormatInt(a.now().UnixNano(), 10),
		Role:        "model",
		Text:        text,
		Timestamp:   a.now(),
		Provisional: provisional,
	}
}
