package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"petroserve/internal/app"
	"petroserve/internal/handler"
	"petroserve/internal/repository/memory"
	"petroserve/internal/service"
)

// ──────────────────────────────────────────────
// ROUTE GUARD
// ──────────────────────────────────────────────

// newTestRouter wires the full router against the seeded in-memory
// repositories and a mock session store, with the login delay reduced so
// the end-to-end flow runs fast.
func newTestRouter(t *testing.T) (*gin.Engine, *MockSessionStore, *MockIdempotencyStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := NewMockSessionStore()
	idempotency := NewMockIdempotencyStore()

	authService := service.NewAuthService(memory.NewUserRepository(), sessions, time.Millisecond)
	fuelService := service.NewFuelOrderService(nil)
	mechanicService := service.NewMechanicBookingService(nil)
	locationService := service.NewLocationService(&service.StaticGeolocator{
		Position: service.Position{Lat: 28.5355, Lng: 77.3910},
	})
	deliveryService := service.NewDeliveryService(memory.NewDeliveryRepository(), nil)
	historyService := service.NewHistoryService(memory.NewHistoryRepository())

	router := app.NewRouter(app.RouterDeps{
		AuthHandler:      handler.NewAuthHandler(authService),
		OrderHandler:     handler.NewOrderHandler(fuelService, mechanicService, locationService),
		DeliveryHandler:  handler.NewDeliveryHandler(deliveryService),
		HistoryHandler:   handler.NewHistoryHandler(historyService),
		CatalogHandler:   handler.NewCatalogHandler(memory.NewCatalogRepository()),
		SessionStore:     sessions,
		IdempotencyStore: idempotency,
	})

	return router, sessions, idempotency
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGuard_RejectsRequestsWithoutSession(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/dashboard"},
		{http.MethodGet, "/v1/catalog/services"},
		{http.MethodGet, "/v1/deliveries/ORD-2024-001"},
		{http.MethodGet, "/v1/history"},
	}

	for _, route := range protected {
		recorder := doJSON(router, route.method, route.path, "", nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, recorder.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid response body: %v", route.path, err)
		}
		if body["redirect"] != "/login" {
			t.Errorf("%s: expected redirect hint /login, got %q", route.path, body["redirect"])
		}
	}
}

func TestGuard_RejectsUnknownToken(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	recorder := doJSON(router, http.MethodGet, "/v1/dashboard", "demo-token-0-bogus", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown token, got %d", recorder.Code)
	}
}

func TestGuard_PublicRoutesStayOpen(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/v1/why-choose"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Errorf("%s: expected 200 without a session, got %d", path, recorder.Code)
		}
	}
}

// ──────────────────────────────────────────────
// END TO END
// ──────────────────────────────────────────────

func TestEndToEnd_LoginOrderTrack(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	// Log in with the seeded demo credentials.
	recorder := doJSON(router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "demo@petroserve.com",
		"password": "demo123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var login handler.LoginResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &login); err != nil {
		t.Fatalf("login: invalid response body: %v", err)
	}
	if login.Token == "" {
		t.Fatal("login: expected a session token")
	}
	if !strings.HasPrefix(login.Token, "demo-token-") {
		t.Errorf("login: unexpected token format %q", login.Token)
	}

	// The dashboard greets the logged-in user by name.
	recorder = doJSON(router, http.MethodGet, "/v1/dashboard", login.Token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Demo User") {
		t.Errorf("dashboard: expected user name in response: %s", recorder.Body.String())
	}

	// Place a fuel order.
	recorder = doJSON(router, http.MethodPost, "/v1/orders/fuel", login.Token, map[string]any{
		"vehicle": map[string]string{
			"type":                "CAR",
			"registration_number": "DL 01 AB 1234",
			"fuel_type":           "PETROL",
		},
		"quantity_liters": 25,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var placed handler.PlacedOrderResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &placed); err != nil {
		t.Fatalf("place order: invalid response body: %v", err)
	}
	if placed.OrderID == "" {
		t.Fatal("place order: expected an order id")
	}
	expectedTotal := 25*service.PetrolPricePerLiter + service.FuelServiceFee
	if !almostEqual(placed.Total, expectedTotal) {
		t.Errorf("place order: expected total %.2f, got %.2f", expectedTotal, placed.Total)
	}

	// Tracking the fresh order lands on the active delivery.
	recorder = doJSON(router, http.MethodGet, fmt.Sprintf("/v1/deliveries/%s", placed.OrderID), login.Token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("track: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var tracked map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &tracked); err != nil {
		t.Fatalf("track: invalid response body: %v", err)
	}
	if tracked["status"] != "ON_THE_WAY" {
		t.Errorf("track: expected status ON_THE_WAY, got %v", tracked["status"])
	}
}

func TestEndToEnd_LogoutClosesTheDoor(t *testing.T) {
	t.Parallel()

	router, sessions, _ := newTestRouter(t)

	recorder := doJSON(router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "test123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", recorder.Code)
	}

	var login handler.LoginResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &login); err != nil {
		t.Fatalf("login: invalid response body: %v", err)
	}

	recorder = doJSON(router, http.MethodPost, "/v1/auth/logout", login.Token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", recorder.Code)
	}
	if sessions.SessionCount() != 0 {
		t.Errorf("expected no live sessions after logout, got %d", sessions.SessionCount())
	}

	recorder = doJSON(router, http.MethodGet, "/v1/history", login.Token, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", recorder.Code)
	}
}

func TestEndToEnd_MechanicBookingGate(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	recorder := doJSON(router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "admin@petroserve.com",
		"password": "admin123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", recorder.Code)
	}

	var login handler.LoginResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &login); err != nil {
		t.Fatalf("login: invalid response body: %v", err)
	}

	// Confirming without a service type is rejected.
	recorder = doJSON(router, http.MethodPost, "/v1/orders/mechanic", login.Token, map[string]any{
		"description": "engine noise",
	})
	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 without a service type, got %d: %s", recorder.Code, recorder.Body.String())
	}

	// Selecting one unlocks confirmation.
	recorder = doJSON(router, http.MethodPost, "/v1/orders/mechanic", login.Token, map[string]any{
		"service_type_id": "battery",
		"description":     "engine noise",
	})
	if recorder.Code != http.StatusCreated {
		t.Errorf("expected 201 with a service type, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestGuard_FailsClosedWhenSessionStoreErrors(t *testing.T) {
	t.Parallel()

	router, sessions, _ := newTestRouter(t)
	sessions.GetError = errors.New("redis connection lost")

	// A broken session store must read as "no session", never as a 500.
	recorder := doJSON(router, http.MethodGet, "/v1/dashboard", "demo-token-1-abcd1234", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when the session store errors, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["redirect"] != "/login" {
		t.Errorf("expected redirect hint /login, got %q", body["redirect"])
	}
}

// ──────────────────────────────────────────────
// ORDER IDEMPOTENCY
// ──────────────────────────────────────────────

func doJSONWithKey(router *gin.Engine, method, path, token, idempotencyKey string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", token)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func loginDemo(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder := doJSON(router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "demo@petroserve.com",
		"password": "demo123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", recorder.Code)
	}

	var login handler.LoginResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &login); err != nil {
		t.Fatalf("login: invalid response body: %v", err)
	}
	return login.Token
}

func fuelOrderBody() map[string]any {
	return map[string]any{
		"vehicle": map[string]string{
			"type":                "CAR",
			"registration_number": "DL 01 AB 1234",
			"fuel_type":           "PETROL",
		},
		"quantity_liters": 25,
	}
}

func placedOrderID(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	if recorder.Code != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var placed handler.PlacedOrderResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &placed); err != nil {
		t.Fatalf("place order: invalid response body: %v", err)
	}
	return placed.OrderID
}

func TestIdempotency_ReplayReturnsFirstOrder(t *testing.T) {
	t.Parallel()

	router, _, idempotency := newTestRouter(t)
	token := loginDemo(t, router)

	first := placedOrderID(t, doJSONWithKey(router, http.MethodPost, "/v1/orders/fuel", token, "retry-key-1", fuelOrderBody()))
	replay := placedOrderID(t, doJSONWithKey(router, http.MethodPost, "/v1/orders/fuel", token, "retry-key-1", fuelOrderBody()))

	if first != replay {
		t.Errorf("replayed request created a second order: %s vs %s", first, replay)
	}
	if idempotency.EntryCount() != 1 {
		t.Errorf("expected 1 cached response, got %d", idempotency.EntryCount())
	}

	// A fresh key is a fresh order.
	other := placedOrderID(t, doJSONWithKey(router, http.MethodPost, "/v1/orders/fuel", token, "retry-key-2", fuelOrderBody()))
	if other == first {
		t.Error("distinct keys must not share an order")
	}
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	t.Parallel()

	router, _, idempotency := newTestRouter(t)
	token := loginDemo(t, router)

	first := placedOrderID(t, doJSON(router, http.MethodPost, "/v1/orders/fuel", token, fuelOrderBody()))
	second := placedOrderID(t, doJSON(router, http.MethodPost, "/v1/orders/fuel", token, fuelOrderBody()))

	if first == second {
		t.Error("requests without a key must each place an order")
	}
	if idempotency.EntryCount() != 0 {
		t.Errorf("expected no cached responses, got %d", idempotency.EntryCount())
	}
}

func TestIdempotency_FailsOpenWhenStoreErrors(t *testing.T) {
	t.Parallel()

	router, _, idempotency := newTestRouter(t)
	token := loginDemo(t, router)

	idempotency.GetError = errors.New("redis down")

	// Orders still go through; the retry guarantee is lost, not the order.
	first := placedOrderID(t, doJSONWithKey(router, http.MethodPost, "/v1/orders/fuel", token, "retry-key-3", fuelOrderBody()))
	second := placedOrderID(t, doJSONWithKey(router, http.MethodPost, "/v1/orders/fuel", token, "retry-key-3", fuelOrderBody()))

	if first == "" || second == "" {
		t.Fatal("expected both orders to be placed")
	}
	if first == second {
		t.Error("with the store down each request stands alone")
	}
}

// ──────────────────────────────────────────────
// CANCEL OVER HTTP
// ──────────────────────────────────────────────

func TestCancel_BareRequestBodyIsAccepted(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)
	token := loginDemo(t, router)

	// No body at all: the reason is optional, so this must reach the
	// lifecycle check (the seeded delivery is en route, hence 409).
	req := httptest.NewRequest(http.MethodPost, "/v1/deliveries/ORD-2024-001/cancel", nil)
	req.Header.Set("X-Session-Token", token)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 for an en-route cancel, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
