package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealerdesk/internal/config"
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/repositories/records"
	"dealerdesk/internal/services"
	"dealerdesk/internal/store"
	"dealerdesk/pkg/logger"
	"dealerdesk/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	testSecret   = "test-secret"
	testEmail    = "admin@dealerdesk.local"
	testPassword = "test-password"
)

// newTestRouter assembles the full API over in-memory backends.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()

	provider, err := storage.NewLocalProvider(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}
	files := storage.NewFileService(provider, log)
	if err := files.EnsureBuckets(context.Background()); err != nil {
		t.Fatalf("EnsureBuckets: %v", err)
	}

	s := store.NewMemoryStore()
	s.SetUniqueKeys("vehicles", "vin")
	s.SetUniqueKeys("customers", "email")

	vehicleRepo := records.NewVehicleRepository(s, nil, log)
	customerRepo := records.NewCustomerRepository(s)
	saleRepo := records.NewSaleRepository(s, vehicleRepo, customerRepo, log)
	appointmentRepo := records.NewServiceAppointmentRepository(s, customerRepo)
	applicationRepo := records.NewApplicationRepository(s)

	intakeService := services.NewIntakeService(applicationRepo, files, log)
	mediaService := services.NewMediaService(vehicleRepo, files, log)
	seedService := services.NewSeedService(vehicleRepo, customerRepo, log)

	security := &config.SecurityConfig{
		JWTSecret:     testSecret,
		JWTExpiry:     time.Hour,
		AdminEmail:    testEmail,
		AdminPassword: testPassword,
	}

	router := gin.New()
	v1 := router.Group("/api/v1")

	SetupVehicleRoutes(v1, handlers.NewVehicleHandler(vehicleRepo, mediaService), testSecret)
	SetupCustomerRoutes(v1, handlers.NewCustomerHandler(customerRepo), testSecret)
	SetupSaleRoutes(v1, handlers.NewSaleHandler(saleRepo), testSecret)
	SetupAppointmentRoutes(v1, handlers.NewAppointmentHandler(appointmentRepo), testSecret)
	SetupApplicationRoutes(v1, handlers.NewIntakeHandler(intakeService), handlers.NewApplicationHandler(applicationRepo, files), testSecret)
	SetupAdminRoutes(v1, handlers.NewAuthHandler(security), handlers.NewAdminHandler(files, seedService), handlers.NewFileHandler(files), testSecret)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if response.Data.Token == "" {
		t.Fatal("empty token")
	}
	return response.Data.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/customers", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/customers", "garbage-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestVehicleCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	create := map[string]interface{}{
		"make":         "BMW",
		"model":        "M5",
		"year":         2021,
		"price":        80000,
		"mileage":      12000,
		"vin":          "wbsjf0c59kb448844",
		"color":        "Black",
		"fuel_type":    "petrol",
		"transmission": "automatic",
		"body_type":    "sedan",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/vehicles", token, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data struct {
			ID     string `json:"id"`
			VIN    string `json:"vin"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data.VIN != "WBSJF0C59KB448844" {
		t.Errorf("VIN %q was not normalized", created.Data.VIN)
	}
	if created.Data.Status != "available" {
		t.Errorf("status %q, want available", created.Data.Status)
	}

	// Duplicate VIN conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/vehicles", token, create)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create returned %d, want 409", rec.Code)
	}

	// Public listing needs no token.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/vehicles?status=available", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/vehicles/"+created.Data.ID, token, map[string]interface{}{
		"price": 75000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/vehicles/"+created.Data.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/vehicles/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d, want 404", rec.Code)
	}
}

func TestSubmitApplicationMultipart(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("first_name", "Sam")
	_ = writer.WriteField("last_name", "Taylor")
	_ = writer.WriteField("email", "sam.taylor@example.com")
	_ = writer.WriteField("phone", "+1 555 010 4242")

	part, err := writer.CreateFormFile("id_front", "front.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fmt.Fprint(part, "front-bytes")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/submit", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("submit returned %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Data struct {
			ID              string `json:"id"`
			ReferenceNumber string `json:"reference_number"`
			Status          string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(response.Data.ReferenceNumber, "APP-") {
		t.Errorf("reference %q", response.Data.ReferenceNumber)
	}
	if response.Data.Status != "pending" {
		t.Errorf("status %q, want pending", response.Data.Status)
	}

	// The admin can review it, including a signed document URL.
	token := login(t, router)
	docRec := doJSON(t, router, http.MethodGet, "/api/v1/applications/"+response.Data.ID+"/documents", token, nil)
	if docRec.Code != http.StatusOK {
		t.Fatalf("documents returned %d: %s", docRec.Code, docRec.Body.String())
	}
	var documents struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(docRec.Body.Bytes(), &documents); err != nil {
		t.Fatalf("decode documents: %v", err)
	}
	if !strings.Contains(documents.Data["id_front_url"], "/id_documents/") {
		t.Errorf("unexpected document url %q", documents.Data["id_front_url"])
	}
}

func TestSubmitApplicationMissingFields(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("first_name", "Sam")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/submit", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPublicAppointmentBooking(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/customers", token, map[string]string{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane.doe@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer returned %d: %s", rec.Code, rec.Body.String())
	}
	var customer struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	// Booking is public.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/service-appointments", "", map[string]interface{}{
		"customer_id":      customer.Data.ID,
		"vehicle_info":     "2015 Honda Civic",
		"appointment_date": time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"service_type":     "oil change",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book appointment returned %d: %s", rec.Code, rec.Body.String())
	}

	// Listing them is not.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/service-appointments", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/service-appointments", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list returned %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSeedEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/setup/seed", token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/setup/seed", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("reseed returned %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/vehicles", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var listing struct {
		Data []struct {
			Make string `json:"make"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Data) != 3 {
		t.Fatalf("expected 3 seeded vehicles, got %d", len(listing.Data))
	}
}
