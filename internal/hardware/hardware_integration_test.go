package hardware_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/HardwareHub/HH-Backend/internal/auth"
	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/hardware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var dbAvailable bool

var testServer *httptest.Server

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")
	config.Load()

	if config.App.DatabaseURL == "" {
		os.Exit(m.Run())
	}

	config.App.Env = "development"

	db.Connect()
	dbAvailable = true

	auth.Init()
	hardware.Init()

	r := chi.NewRouter()
	r.Mount("/api/auth", auth.SetupRoutes())
	r.Mount("/api/hardware", hardware.SetupRoutes())

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// createUserWithRole inserts a user with the given role and cleans it up
// after the test. Returns the email and plaintext password.
func createUserWithRole(t *testing.T, role string) (string, string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	password := "TestPass123!"
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	user := auth.User{
		ID:             uuid.NewString(),
		Name:           "Test " + role,
		Email:          fmt.Sprintf("testuser_%s@example.com", uuid.NewString()[:8]),
		HashedPassword: hashed,
		Role:           role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Cleanup(func() {
		db.DB.Where("user_id = ?", user.ID).Delete(&auth.Session{})
		db.DB.Where("id = ?", user.ID).Delete(&auth.User{})
	})

	return user.Email, password
}

// loggedInClient logs the user in and returns a cookie-jar client carrying
// the session.
func loggedInClient(t *testing.T, email, password string) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	client := &http.Client{Jar: jar}

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := client.Post(testServer.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/auth/login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}
	return client
}

func createItem(t *testing.T, client *http.Client, payload map[string]any) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	resp, err := client.Post(testServer.URL+"/api/hardware/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/hardware/: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("invalid JSON body: %s", raw)
	}
	return result
}

// TestCreateHardwareRequiresAdmin verifies the role gate: anonymous callers
// get 401, regular users 403, admins 201.
func TestCreateHardwareRequiresAdmin(t *testing.T) {
	adminEmail, adminPass := createUserWithRole(t, "admin")
	userEmail, userPass := createUserWithRole(t, "user")

	payload := map[string]any{
		"name":     "Test Rotary Hammer " + uuid.NewString()[:8],
		"category": "Power Tools",
		"price":    9999.0,
	}
	t.Cleanup(func() {
		db.DB.Where("name = ?", payload["name"]).Delete(&hardware.Hardware{})
	})

	// Anonymous.
	resp := createItem(t, http.DefaultClient, payload)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for anonymous create, got %d", resp.StatusCode)
	}

	// Regular user.
	userClient := loggedInClient(t, userEmail, userPass)
	resp = createItem(t, userClient, payload)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin create, got %d", resp.StatusCode)
	}

	// Admin.
	adminClient := loggedInClient(t, adminEmail, adminPass)
	resp = createItem(t, adminClient, payload)
	body := decodeBody(t, resp)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for admin create, got %d; body: %v", resp.StatusCode, body)
	}
}

// TestListHardwareFilters seeds two distinctive items and checks the
// category, search and price-range filters.
func TestListHardwareFilters(t *testing.T) {
	adminEmail, adminPass := createUserWithRole(t, "admin")
	adminClient := loggedInClient(t, adminEmail, adminPass)

	suffix := uuid.NewString()[:8]
	cheap := map[string]any{
		"name":        "Filter Chisel " + suffix,
		"category":    "Test Hand Tools " + suffix,
		"description": "forged steel chisel",
		"price":       500.0,
	}
	pricey := map[string]any{
		"name":        "Filter Excavator " + suffix,
		"category":    "Test Equipment " + suffix,
		"description": "mini excavator",
		"price":       900000.0,
	}
	for _, payload := range []map[string]any{cheap, pricey} {
		resp := createItem(t, adminClient, payload)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed create failed: %d", resp.StatusCode)
		}
	}
	t.Cleanup(func() {
		db.DB.Where("name IN ?", []string{cheap["name"].(string), pricey["name"].(string)}).
			Delete(&hardware.Hardware{})
	})

	listNames := func(query string) []string {
		resp, err := http.Get(testServer.URL + "/api/hardware/?" + query)
		if err != nil {
			t.Fatalf("GET /api/hardware/: %v", err)
		}
		body := decodeBody(t, resp)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d; body: %v", resp.StatusCode, body)
		}
		items, _ := body["data"].([]any)
		var names []string
		for _, item := range items {
			m, _ := item.(map[string]any)
			names = append(names, m["name"].(string))
		}
		return names
	}

	contains := func(names []string, want string) bool {
		for _, n := range names {
			if n == want {
				return true
			}
		}
		return false
	}

	// Category filter only matches the one item in that category.
	names := listNames("category=" + "Test+Hand+Tools+" + suffix)
	if !contains(names, cheap["name"].(string)) || contains(names, pricey["name"].(string)) {
		t.Errorf("category filter returned wrong set: %v", names)
	}

	// Search matches the description.
	names = listNames("search=mini+excavator")
	if !contains(names, pricey["name"].(string)) {
		t.Errorf("search filter missed the item: %v", names)
	}

	// Price range excludes the expensive item.
	names = listNames("min_price=100&max_price=1000&search=" + suffix)
	if !contains(names, cheap["name"].(string)) || contains(names, pricey["name"].(string)) {
		t.Errorf("price filter returned wrong set: %v", names)
	}
}

// TestGetHardwareNotFound verifies an unknown id produces a 404 envelope.
func TestGetHardwareNotFound(t *testing.T) {
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	resp, err := http.Get(testServer.URL + "/api/hardware/" + uuid.NewString())
	if err != nil {
		t.Fatalf("GET /api/hardware/{id}: %v", err)
	}
	body := decodeBody(t, resp)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d; body: %v", resp.StatusCode, body)
	}
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
}
