package client

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

// ExchangeRate is the fixed conversion: 1 EcoCoin = 10 XOF.
const ExchangeRate = 10

// Phase is the coarse state of the shell.
type Phase string

const (
	PhaseLanguageSelect Phase = "LANGUAGE_SELECT"
	PhaseRoleSelect     Phase = "ROLE_SELECT"
	PhaseCredentials    Phase = "CREDENTIALS"
	PhaseLoggedIn       Phase = "LOGGED_IN"
)

var (
	ErrNotLoggedIn         = errors.New("no active session")
	ErrInsufficientBalance = errors.New("insufficient EcoCoin balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// PickupDraft is the form a user fills before submission. ScheduledAt is
// derived from Date+Time when empty.
type PickupDraft struct {
	Items       []WasteItem
	Date        string // "2006-01-02"
	Time        string // "15:04"
	Location    string
	Notes       string
	ScheduledAt string // optional explicit ISO timestamp
}

// scheduleString resolves the draft's timestamp. Date and time inputs
// are read as UTC wall-clock, matching the backend's storage timezone.
func (d *PickupDraft) scheduleString(now time.Time) string {
	if d.ScheduledAt != "" {
		return d.ScheduledAt
	}
	if d.Date != "" {
		tm := d.Time
		if tm == "" {
			tm = "00:00"
		}
		if parsed, err := time.ParseInLocation("2006-01-02T15:04", d.Date+"T"+tm, time.UTC); err == nil {
			return isoString(parsed)
		}
	}
	return isoString(now)
}

// Shell is the application root: it owns the session, the current view,
// the pickup and transaction lists, and the offline flag. Every mutation
// goes through a named action holding the single shell mutex, so there is
// one writer and no intermediate states are observable.
type Shell struct {
	mu   sync.Mutex
	api  *Client
	auth *Authenticator
	now  func() time.Time

	phase            Phase
	language         string
	languageSelected bool
	targetRole       string

	session       *Session
	view          View
	transactions  []Transaction
	pickups       []PickupRequest
	offline       bool
	totalRecycled int
	chart         []ChartPoint
}

func NewShell(api *Client) *Shell {
	s := &Shell{
		api:      api,
		auth:     NewAuthenticator(api),
		now:      time.Now,
		phase:    PhaseLanguageSelect,
		language: "en",
		view:     ViewDashboard,
	}

	// Resume a persisted session; language/role selection is skipped.
	if session, ok := s.auth.Restore(); ok {
		s.adoptSession(session)
	}
	return s
}

// --- login flow ---

func (s *Shell) SelectLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	s.languageSelected = true
	if s.phase == PhaseLanguageSelect {
		s.phase = PhaseRoleSelect
	}
}

func (s *Shell) SelectRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetRole = role
	if s.phase == PhaseRoleSelect {
		s.phase = PhaseCredentials
	}
}

// Login submits credentials. A transport failure still yields an
// authenticated (synthesized) session; only credential rejections and
// client-side validation errors surface.
func (s *Shell) Login(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.auth.Login(email, password, s.targetRole, s.language)
	if err != nil {
		return err
	}
	s.adoptSession(session)
	return nil
}

// Register creates an account, falling back like Login does.
func (s *Shell) Register(name, email, password, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.auth.Register(name, email, password, confirm, s.targetRole, s.language)
	if err != nil {
		return err
	}
	s.adoptSession(session)
	return nil
}

// adoptSession moves the shell into the authenticated state. Callers
// hold the mutex.
func (s *Shell) adoptSession(session Session) {
	s.session = &session
	if session.User.Language != "" {
		s.language = session.User.Language
	}
	s.languageSelected = true
	s.targetRole = ""
	s.phase = PhaseLoggedIn
	s.view = ViewDashboard

	if session.SeedDemo {
		s.transactions = MockTransactions(s.now())
		s.totalRecycled = demoTotalRecycled
		s.chart = MockChart()
	} else {
		s.transactions = nil
		s.totalRecycled = 0
		s.chart = EmptyChart()
	}
	s.pickups = nil
	s.offline = false
}

// --- navigation ---

// Navigate switches the current view. Navigation is total: any view is
// reachable from any view and nothing else changes.
func (s *Shell) Navigate(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// Logout clears the session and all navigation state.
func (s *Shell) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Logout()
	s.session = nil
	s.pickups = nil
	s.transactions = nil
	s.offline = false
	s.targetRole = ""
	s.view = ViewDashboard
	if s.languageSelected {
		s.phase = PhaseRoleSelect
	} else {
		s.phase = PhaseLanguageSelect
	}
}

// ToggleRole is a forced re-authentication under the opposite role: the
// session is discarded and the credentials step is pre-seeded with the
// new role and the already-selected language.
func (s *Shell) ToggleRole() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return
	}
	// Only plain users toggle up to collector; any other role (collector,
	// admin) toggles down to user.
	newRole := RoleUser
	if s.session.User.Role == RoleUser {
		newRole = RoleCollector
	}

	s.auth.Logout()
	s.session = nil
	s.pickups = nil
	s.transactions = nil
	s.offline = false
	s.view = ViewDashboard
	s.targetRole = newRole
	s.phase = PhaseCredentials
}

// --- pickups ---

// RefreshPickups fetches the pickup list. Any failure yields the fixed
// demo set and flips the offline flag; success clears it.
func (s *Shell) RefreshPickups() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return
	}

	list, err := s.api.ListPickups()
	if err != nil {
		s.pickups = MockPickups(s.now())
		s.offline = true
		return
	}
	s.pickups = list
	s.offline = false
}

// SubmitPickup creates a pickup. On a transport failure it synthesizes a
// local record instead of surfacing an error; either way the new pickup
// ends up at index 0 and the shell returns to the dashboard.
func (s *Shell) SubmitPickup(draft PickupDraft) (PickupRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return PickupRequest{}, ErrNotLoggedIn
	}
	if len(draft.Items) == 0 {
		return PickupRequest{}, ErrNoItems
	}

	scheduledAt := draft.scheduleString(s.now())

	created, err := s.api.CreatePickup(draft.Items, scheduledAt, draft.Location, draft.Notes)
	if err != nil {
		created = PickupRequest{
			ID:          strconv.FormatInt(s.now().UnixMilli(), 10),
			Status:      StatusRequested,
			ScheduledAt: scheduledAt,
			Items:       draft.Items,
			Location:    draft.Location,
			Notes:       draft.Notes,
		}
		s.offline = true
	}

	s.pickups = append([]PickupRequest{created}, s.pickups...)
	s.view = ViewDashboard
	return created, nil
}

// --- rewards ---

// Redeem debits ceil(amountXOF/10) coins and prepends a `spent`
// transaction in the same step. The guard rejects the whole action; no
// partial debit is ever visible.
func (s *Shell) Redeem(amountXOF int, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ErrNotLoggedIn
	}
	if amountXOF <= 0 {
		return ErrInvalidAmount
	}

	cost := (amountXOF + ExchangeRate - 1) / ExchangeRate
	if cost > s.session.User.EcoCoins {
		return ErrInsufficientBalance
	}

	s.session.User.EcoCoins -= cost
	s.transactions = append([]Transaction{{
		ID:          strconv.FormatInt(s.now().UnixMilli(), 10),
		Amount:      cost,
		Type:        "spent",
		Description: description,
		Date:        isoString(s.now()),
	}}, s.transactions...)
	return nil
}

// --- read accessors ---

func (s *Shell) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Shell) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Shell) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Shell) TargetRole() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targetRole
}

func (s *Shell) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

func (s *Shell) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

func (s *Shell) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.User.EcoCoins
}

func (s *Shell) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Shell) Pickups() []PickupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PickupRequest, len(s.pickups))
	copy(out, s.pickups)
	return out
}

// NextPickup is the first pickup still awaiting collection.
func (s *Shell) NextPickup() *PickupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pickups {
		if s.pickups[i].Status == StatusRequested || s.pickups[i].Status == StatusAssigned {
			p := s.pickups[i]
			return &p
		}
	}
	return nil
}

func (s *Shell) TotalRecycled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalRecycled
}

// TreesSaved estimates trees saved from kilograms recycled (69 kg of
// recovered material per tree).
func (s *Shell) TreesSaved() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalRecycled / 69
}

func (s *Shell) ChartData() []ChartPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChartPoint, len(s.chart))
	copy(out, s.chart)
	return out
}
