package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func newOfflineShell(t *testing.T) *Shell {
	t.Helper()
	shell := NewShell(newDeadClient())
	shell.SelectLanguage("en")
	shell.SelectRole(RoleUser)
	if err := shell.Login("maria@example.com", "secret"); err != nil {
		t.Fatalf("fallback login: %v", err)
	}
	return shell
}

func TestShellPhases(t *testing.T) {
	shell := NewShell(newDeadClient())
	if got := shell.Phase(); got != PhaseLanguageSelect {
		t.Fatalf("initial phase = %v", got)
	}
	shell.SelectLanguage("pt")
	if got := shell.Phase(); got != PhaseRoleSelect {
		t.Fatalf("after language = %v", got)
	}
	shell.SelectRole(RoleCollector)
	if got := shell.Phase(); got != PhaseCredentials {
		t.Fatalf("after role = %v", got)
	}
	if err := shell.Login("joao@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	if got := shell.Phase(); got != PhaseLoggedIn {
		t.Fatalf("after login = %v", got)
	}
	if got := shell.Session().User.Role; got != RoleCollector {
		t.Errorf("role = %q", got)
	}
}

func TestNavigationIsTotal(t *testing.T) {
	shell := newOfflineShell(t)
	for _, from := range Views() {
		shell.Navigate(from)
		for _, to := range Views() {
			shell.Navigate(to)
			if got := shell.CurrentView(); got != to {
				t.Fatalf("navigate %v -> %v landed on %v", from, to, got)
			}
			session := shell.Session()
			if session == nil || session.User.EcoCoins != demoBalance {
				t.Fatal("navigation must not touch the session")
			}
			shell.Navigate(from)
		}
	}
}

func TestDemoLoginSeedsDashboard(t *testing.T) {
	shell := newOfflineShell(t)
	if got := len(shell.Transactions()); got != 3 {
		t.Errorf("transactions = %d", got)
	}
	if got := shell.TotalRecycled(); got != demoTotalRecycled {
		t.Errorf("totalRecycled = %d", got)
	}
	if got := shell.TreesSaved(); got != demoTotalRecycled/69 {
		t.Errorf("treesSaved = %d", got)
	}
	if got := len(shell.ChartData()); got != 7 {
		t.Errorf("chart days = %d", got)
	}
	if shell.Balance() != demoBalance {
		t.Errorf("balance = %d", shell.Balance())
	}
}

func TestFreshRegistrationStartsEmpty(t *testing.T) {
	shell := NewShell(newDeadClient())
	shell.SelectLanguage("en")
	shell.SelectRole(RoleUser)
	if err := shell.Register("Ana", "ana@example.com", "secret", "secret"); err != nil {
		t.Fatal(err)
	}
	if len(shell.Transactions()) != 0 {
		t.Error("fresh account must have no transactions")
	}
	if shell.TotalRecycled() != 0 {
		t.Error("fresh account must have no recycled total")
	}
	if shell.Balance() != 0 {
		t.Error("fresh account must start at 0 coins")
	}
	for _, p := range shell.ChartData() {
		if p.Plastic != 0 || p.Paper != 0 || p.Glass != 0 || p.Metal != 0 || p.EWaste != 0 {
			t.Fatalf("fresh chart must be zeroed, got %+v", p)
		}
	}
}

func TestRedeem(t *testing.T) {
	shell := newOfflineShell(t)

	// 1040 XOF costs ceil(1040/10) = 104 coins.
	if err := shell.Redeem(1040, "Airtime top-up"); err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if got := shell.Balance(); got != demoBalance-104 {
		t.Errorf("balance = %d, want %d", got, demoBalance-104)
	}
	txns := shell.Transactions()
	if len(txns) != 4 {
		t.Fatalf("transactions = %d", len(txns))
	}
	if txns[0].Type != "spent" || txns[0].Amount != 104 || txns[0].Description != "Airtime top-up" {
		t.Errorf("txn = %+v", txns[0])
	}

	// 1 XOF still costs a whole coin.
	if err := shell.Redeem(1, "Rounding"); err != nil {
		t.Fatal(err)
	}
	if got := shell.Balance(); got != demoBalance-105 {
		t.Errorf("balance = %d", got)
	}
}

func TestRedeemGuard(t *testing.T) {
	shell := newOfflineShell(t)
	before := shell.Balance()

	if err := shell.Redeem(before*ExchangeRate+10, "Too much"); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v", err)
	}
	if shell.Balance() != before {
		t.Error("failed redeem must not debit")
	}
	if len(shell.Transactions()) != 3 {
		t.Error("failed redeem must not record a transaction")
	}

	if err := shell.Redeem(0, "Zero"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: err = %v", err)
	}
	if err := shell.Redeem(-50, "Negative"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: err = %v", err)
	}
}

func TestSubmitPickupOffline(t *testing.T) {
	shell := newOfflineShell(t)

	created, err := shell.SubmitPickup(PickupDraft{
		Items:    []WasteItem{{Type: "plastic", Quantity: 2}},
		Date:     "2025-06-01",
		Time:     "09:00",
		Location: "Bairro de Ajuda",
	})
	if err != nil {
		t.Fatalf("SubmitPickup: %v", err)
	}
	if created.ScheduledAt != "2025-06-01T09:00:00.000Z" {
		t.Errorf("scheduledAt = %q", created.ScheduledAt)
	}
	if created.Status != StatusRequested {
		t.Errorf("status = %q", created.Status)
	}
	if created.ID == "" {
		t.Error("local pickup must get an id")
	}
	if !shell.Offline() {
		t.Error("offline flag must be set after a failed submit")
	}
	pickups := shell.Pickups()
	if len(pickups) == 0 || pickups[0].ID != created.ID {
		t.Error("new pickup must be at index 0")
	}
	if got := shell.CurrentView(); got != ViewDashboard {
		t.Errorf("view after submit = %v", got)
	}

	next := shell.NextPickup()
	if next == nil || next.ID != created.ID {
		t.Errorf("NextPickup = %+v", next)
	}
}

func TestSubmitPickupOnline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]interface{}{"id": "u-1", "name": "Maria", "email": "maria@example.com", "role": "user", "ecoCoins": 10},
			"token": "jwt-abc",
		})
	})
	mux.HandleFunc("/pickups", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "p-1", "status": "requested", "scheduled_at": "2025-06-01T09:00:00.000Z",
		})
	})
	api, _ := newTestServer(t, mux)
	shell := NewShell(api)
	shell.SelectLanguage("en")
	shell.SelectRole(RoleUser)
	if err := shell.Login("maria@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	created, err := shell.SubmitPickup(PickupDraft{
		Items: []WasteItem{{Type: "glass", Quantity: 1}},
		Date:  "2025-06-01",
		Time:  "09:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "p-1" {
		t.Errorf("id = %q", created.ID)
	}
	if shell.Offline() {
		t.Error("successful submit must not set offline")
	}
}

func TestSubmitPickupRequiresItems(t *testing.T) {
	shell := newOfflineShell(t)
	if _, err := shell.SubmitPickup(PickupDraft{Date: "2025-06-01"}); !errors.Is(err, ErrNoItems) {
		t.Fatalf("err = %v", err)
	}
}

func TestRefreshPickupsFallsBackToDemoSet(t *testing.T) {
	shell := newOfflineShell(t)
	shell.RefreshPickups()
	if !shell.Offline() {
		t.Error("failed refresh must set offline")
	}
	pickups := shell.Pickups()
	if len(pickups) != 2 {
		t.Fatalf("demo pickups = %d", len(pickups))
	}
	if pickups[0].ID != "mock-1" || pickups[0].Status != StatusAssigned {
		t.Errorf("pickups[0] = %+v", pickups[0])
	}
	if pickups[1].Status != StatusCompleted {
		t.Errorf("pickups[1] = %+v", pickups[1])
	}
}

func TestRefreshPickupsOnlineClearsOffline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]interface{}{"id": "u-1", "ecoCoins": 0},
			"token": "jwt-abc",
		})
	})
	mux.HandleFunc("/pickups", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	api, _ := newTestServer(t, mux)
	shell := NewShell(api)
	shell.SelectLanguage("en")
	shell.SelectRole(RoleUser)
	if err := shell.Login("maria@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	shell.RefreshPickups()
	if shell.Offline() {
		t.Error("successful refresh must clear offline")
	}
	if len(shell.Pickups()) != 0 {
		t.Error("empty backend list must stay empty, not fall back to demo data")
	}
}

func TestLogout(t *testing.T) {
	shell := newOfflineShell(t)
	shell.Logout()
	if shell.Session() != nil {
		t.Error("session must be nil after logout")
	}
	if got := shell.Phase(); got != PhaseRoleSelect {
		t.Errorf("phase = %v, language stays selected", got)
	}
	if got := shell.Language(); got != "en" {
		t.Errorf("language = %q", got)
	}
}

func TestToggleRole(t *testing.T) {
	shell := NewShell(newDeadClient())
	shell.SelectLanguage("pt")
	shell.SelectRole(RoleUser)
	if err := shell.Login("maria@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	shell.ToggleRole()
	if shell.Session() != nil {
		t.Error("toggle must discard the session")
	}
	if got := shell.Phase(); got != PhaseCredentials {
		t.Errorf("phase = %v", got)
	}
	if got := shell.TargetRole(); got != RoleCollector {
		t.Errorf("target role = %q", got)
	}
	if got := shell.Language(); got != "pt" {
		t.Errorf("language = %q", got)
	}

	if err := shell.Login("joao@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	if got := shell.Session().User.Role; got != RoleCollector {
		t.Errorf("role after toggle login = %q", got)
	}
}

func TestToggleRoleNonUserRolesMapToUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]interface{}{"id": "u-9", "name": "Root", "email": "root@example.com", "role": "admin", "ecoCoins": 0},
			"token": "jwt-admin",
		})
	})
	api, _ := newTestServer(t, mux)
	shell := NewShell(api)
	shell.SelectLanguage("en")
	shell.SelectRole(RoleUser)
	if err := shell.Login("root@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	shell.ToggleRole()
	if got := shell.TargetRole(); got != RoleUser {
		t.Errorf("admin toggle must target user, got %q", got)
	}
}
