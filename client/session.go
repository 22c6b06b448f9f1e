package client

import (
	"strconv"
	"strings"
	"time"
)

const demoBalance = 1250

// Session is an authenticated identity. Real distinguishes a backend
// session from one synthesized locally when the backend was unreachable.
// SeedDemo is decided here, at session creation: fresh registrations
// start with empty history, everything else gets the demo dataset.
type Session struct {
	User     User
	Token    string
	Real     bool
	SeedDemo bool
}

// Authenticator runs the login/registration flow. Credential rejections
// surface as errors; transport failures degrade into a locally
// synthesized demo identity so the product stays usable with no backend.
type Authenticator struct {
	api *Client
	now func() time.Time
}

func NewAuthenticator(api *Client) *Authenticator {
	return &Authenticator{api: api, now: time.Now}
}

// Login authenticates against the backend. Role and language pre-seed
// the demo identity used when the backend is unreachable.
func (a *Authenticator) Login(email, password, role, language string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrMissingFields
	}

	user, token, err := a.api.Login(email, password)
	if err == nil {
		return Session{User: user, Token: token, Real: true, SeedDemo: true}, nil
	}
	if !IsTransient(err) {
		return Session{}, err
	}
	return a.fallback(email, "", role, language, false)
}

// Register creates an account. The confirmation check runs before any
// network call.
func (a *Authenticator) Register(name, email, password, confirm, role, language string) (Session, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return Session{}, ErrMissingFields
	}
	if password != confirm {
		return Session{}, ErrPasswordMismatch
	}

	user, token, err := a.api.Register(name, email, password, role, language)
	if err == nil {
		return Session{User: user, Token: token, Real: true, SeedDemo: false}, nil
	}
	if !IsTransient(err) {
		return Session{}, err
	}
	return a.fallback(email, name, role, language, true)
}

// fallback synthesizes a demo identity and persists it exactly as a real
// login would, under the same storage keys.
func (a *Authenticator) fallback(email, name, role, language string, registering bool) (Session, error) {
	if role == "" {
		role = RoleUser
	}
	if language == "" {
		language = "en"
	}
	if name == "" {
		if role == RoleCollector {
			name = "John Collector"
		} else {
			name = "Maria Silva"
		}
	}

	coins := demoBalance
	if registering {
		coins = 0
	}

	user := User{
		ID:       strconv.FormatInt(a.now().UnixMilli(), 10),
		Name:     name,
		Email:    email,
		Role:     role,
		EcoCoins: coins,
		Language: language,
	}

	if err := a.api.AdoptSession("mock-token", user); err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: "mock-token", Real: false, SeedDemo: !registering}, nil
}

// Restore resumes a persisted session, if one exists. Restored sessions
// seed the demo dataset; whether they were real cannot be told from
// storage alone, so they are treated as real until a call fails.
func (a *Authenticator) Restore() (Session, bool) {
	user := a.api.CurrentUser()
	if user == nil {
		return Session{}, false
	}
	return Session{User: *user, Token: "", Real: user.ID != "", SeedDemo: true}, true
}

// Logout clears the persisted session.
func (a *Authenticator) Logout() {
	a.api.Logout()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
