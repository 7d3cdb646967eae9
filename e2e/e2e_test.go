//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"
	"medtrack-go/internal/config"
	"medtrack-go/internal/db"
	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"
	reportsdomain "medtrack-go/internal/domain/reports"
	alertsrepo "medtrack-go/internal/repository/postgres/alerts"
	categoriesrepo "medtrack-go/internal/repository/postgres/categories"
	medicinesrepo "medtrack-go/internal/repository/postgres/medicines"
	reportsrepo "medtrack-go/internal/repository/postgres/reports"
	"medtrack-go/internal/transport/httpserver"
	"medtrack-go/internal/transport/httpserver/handler"
	"medtrack-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.NewFromEnv()

	dbConn, err := db.NewPostgres(config.DBConfig{DSN: dsn}, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	categoriesService := categoriesdomain.NewService(categoriesrepo.NewPostgres(dbConn))
	medicinesService := medicinesdomain.NewService(
		medicinesrepo.NewPostgres(dbConn),
		alertsrepo.NewPostgres(dbConn),
		categoriesService,
	)
	reportsService := reportsdomain.NewService(reportsrepo.NewPostgres(dbConn))

	handlers := handler.New(categoriesService, medicinesService, reportsService, log)
	server := httptest.NewServer(httpserver.NewRouter(handlers))

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	for _, table := range []string{"alerts", "medicines", "categories"} {
		if err := dbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestMedicineLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	var category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	status := env.request(t, http.MethodPost, "/api/categories", map[string]string{"name": "Antibiotics"}, &category)
	if status != http.StatusOK {
		t.Fatalf("create category: status %d", status)
	}

	var again struct {
		ID string `json:"id"`
	}
	env.request(t, http.MethodPost, "/api/categories", map[string]string{"name": "Antibiotics"}, &again)
	if again.ID != category.ID {
		t.Fatalf("expected idempotent category creation, got %q and %q", category.ID, again.ID)
	}

	expiry := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	var medicine struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Status   string `json:"status"`
	}
	status = env.request(t, http.MethodPost, "/api/medicines", map[string]interface{}{
		"name":        "Amoxicillin",
		"expiry_date": expiry,
		"category_id": category.ID,
		"quantity":    10,
	}, &medicine)
	if status != http.StatusOK {
		t.Fatalf("create medicine: status %d", status)
	}
	if medicine.Quantity != 10 {
		t.Fatalf("expected quantity 10, got %d", medicine.Quantity)
	}
	if medicine.Status != "Expiring Soon" {
		t.Fatalf("expected Expiring Soon, got %q", medicine.Status)
	}

	env.request(t, http.MethodPost, "/api/medicines", map[string]interface{}{
		"name":        "Amoxicillin",
		"expiry_date": expiry,
		"category_id": category.ID,
		"quantity":    5,
	}, nil)

	var medicines []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	env.request(t, http.MethodGet, "/api/medicines", nil, &medicines)
	if len(medicines) != 1 {
		t.Fatalf("expected one medicine after merge, got %d", len(medicines))
	}
	if medicines[0].Quantity != 15 {
		t.Fatalf("expected merged quantity 15, got %d", medicines[0].Quantity)
	}

	var due []struct {
		ID         string `json:"id"`
		MedicineID string `json:"medicine_id"`
	}
	env.request(t, http.MethodGet, "/api/alerts/due", nil, &due)
	if len(due) != 2 {
		t.Fatalf("expected two due alerts, got %d", len(due))
	}

	status = env.request(t, http.MethodPost, fmt.Sprintf("/api/alerts/%s/sent", due[0].ID), nil, nil)
	if status != http.StatusOK {
		t.Fatalf("mark sent: status %d", status)
	}
	env.request(t, http.MethodGet, "/api/alerts/due", nil, &due)
	if len(due) != 1 {
		t.Fatalf("expected one due alert after marking sent, got %d", len(due))
	}

	var summary struct {
		TotalMedicines  int64 `json:"total_medicines"`
		TotalCategories int64 `json:"total_categories"`
		ExpiringSoon    int64 `json:"expiring_soon"`
		Expired         int64 `json:"expired"`
	}
	env.request(t, http.MethodGet, "/api/reports/summary", nil, &summary)
	if summary.TotalMedicines != 1 || summary.TotalCategories != 1 || summary.ExpiringSoon != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestCleanupExpired(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	var category struct {
		ID string `json:"id"`
	}
	env.request(t, http.MethodPost, "/api/categories", map[string]string{"name": "Painkillers"}, &category)

	expired := time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02")
	env.request(t, http.MethodPost, "/api/medicines", map[string]interface{}{
		"name":        "Aspirin",
		"expiry_date": expired,
		"category_id": category.ID,
		"quantity":    4,
	}, nil)

	var cleared []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Status   string `json:"status"`
	}
	status := env.request(t, http.MethodPost, "/api/medicines/expired/cleanup", nil, &cleared)
	if status != http.StatusOK {
		t.Fatalf("cleanup: status %d", status)
	}
	if len(cleared) != 1 || cleared[0].Quantity != 0 || cleared[0].Status != "Expired" {
		t.Fatalf("unexpected cleanup result %+v", cleared)
	}

	var medicines []struct {
		Quantity int `json:"quantity"`
	}
	env.request(t, http.MethodGet, "/api/medicines", nil, &medicines)
	if len(medicines) != 1 || medicines[0].Quantity != 0 {
		t.Fatalf("expected soft-deleted row to remain, got %+v", medicines)
	}
}
