package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := New(NewMemStore(), WithBaseURL(srv.URL))
	return api, srv
}

// newDeadClient returns a client whose backend is unreachable.
func newDeadClient() *Client {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return New(NewMemStore(), WithBaseURL(srv.URL))
}

func TestLoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if body["email"] != "maria@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]interface{}{"id": "u-1", "name": "Maria", "email": "maria@example.com", "role": "user", "ecoCoins": 42},
			"token": "jwt-abc",
		})
	})
	api, _ := newTestServer(t, mux)

	user, token, err := api.Login("maria@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q", token)
	}
	if user.EcoCoins != 42 {
		t.Errorf("ecoCoins = %d", user.EcoCoins)
	}

	// The session must be restorable from the store alone.
	restored := api.CurrentUser()
	if restored == nil || restored.ID != "u-1" {
		t.Fatalf("CurrentUser after login = %+v", restored)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "Invalid credentials"})
	})
	api, _ := newTestServer(t, mux)

	_, _, err := api.Login("maria@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if IsTransient(err) {
		t.Error("credential rejection must not be transient")
	}
}

func TestListPickupsMapsWireFormat(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pickups", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-abc" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{{
			"id":           "p-1",
			"status":       "requested",
			"scheduled_at": "2025-06-01T09:00:00.000Z",
			"items":        []map[string]interface{}{{"type": "plastic", "quantity": 3}},
			"location":     "Bairro de Ajuda",
		}})
	})
	api, _ := newTestServer(t, mux)
	if err := api.AdoptSession("jwt-abc", User{ID: "u-1"}); err != nil {
		t.Fatal(err)
	}

	list, err := api.ListPickups()
	if err != nil {
		t.Fatalf("ListPickups: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	p := list[0]
	if p.ScheduledAt != "2025-06-01T09:00:00.000Z" {
		t.Errorf("scheduledAt = %q", p.ScheduledAt)
	}
	if len(p.Items) != 1 || p.Items[0].Type != "plastic" || p.Items[0].Quantity != 3 {
		t.Errorf("items = %+v", p.Items)
	}
}

func TestCreatePickupSendsCamelCase(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pickups", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if _, ok := raw["scheduledAt"]; !ok {
			t.Error("request body must use scheduledAt")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "p-9", "status": "requested", "scheduled_at": "2025-06-01T09:00:00.000Z",
		})
	})
	api, _ := newTestServer(t, mux)
	_ = api.AdoptSession("jwt-abc", User{ID: "u-1"})

	created, err := api.CreatePickup([]WasteItem{{Type: "glass", Quantity: 1}}, "2025-06-01T09:00:00.000Z", "Praça", "")
	if err != nil {
		t.Fatalf("CreatePickup: %v", err)
	}
	if created.ID != "p-9" || created.Status != StatusRequested {
		t.Errorf("created = %+v", created)
	}
}

func TestUnreachableBackendIsTransient(t *testing.T) {
	api := newDeadClient()
	_, _, err := api.Login("maria@example.com", "secret")
	if err == nil {
		t.Fatal("want error")
	}
	if !IsTransient(err) {
		t.Errorf("transport failure must be transient, got %v", err)
	}
}

func TestLogoutClearsStore(t *testing.T) {
	store := NewMemStore()
	api := New(store, WithBaseURL("http://localhost:0"))
	_ = api.AdoptSession("jwt-abc", User{ID: "u-1", Name: "Maria"})
	api.Logout()
	if api.CurrentUser() != nil {
		t.Error("CurrentUser after logout must be nil")
	}
	if _, user, _ := store.LoadSession(); user != nil {
		t.Error("store must be empty after logout")
	}
}
