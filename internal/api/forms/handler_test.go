package formsapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "forms.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&forms.BasicFormSubmission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
}

func postBasicForm(body []byte) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/submit-basic-form/", SubmitBasicForm)

	req := httptest.NewRequest(http.MethodPost, "/api/submit-basic-form/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.RemoteAddr = "203.0.113.9:51000"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitBasicFormSuccess(t *testing.T) {
	setupTestDB(t)

	body, _ := json.Marshal(map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"phone":   "+1 555 0100",
		"message": "Hello",
	})
	w := postBasicForm(body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Message != "Basic form submitted successfully" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Data["email"] != "ada@example.com" {
		t.Errorf("submitted data not echoed: %+v", resp.Data)
	}

	var count int64
	database.DB.Model(&forms.BasicFormSubmission{}).Count(&count)
	if count != 1 {
		t.Fatalf("got %d rows, want 1", count)
	}

	var row forms.BasicFormSubmission
	database.DB.First(&row)
	if row.Name != "Ada" || row.Message != "Hello" {
		t.Errorf("stored row = %+v", row)
	}
	if row.IPAddress != "203.0.113.9" {
		t.Errorf("ip = %q", row.IPAddress)
	}
	if row.UserAgent != "test-agent" {
		t.Errorf("user agent = %q", row.UserAgent)
	}
}

func TestSubmitBasicFormMissingField(t *testing.T) {
	setupTestDB(t)

	body, _ := json.Marshal(map[string]string{
		"name":  "Ada",
		"phone": "+1 555 0100",
	})
	w := postBasicForm(body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Error != "Missing required field: email" {
		t.Errorf("error = %q", resp.Error)
	}

	var count int64
	database.DB.Model(&forms.BasicFormSubmission{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submission was stored, count = %d", count)
	}
}

func TestSubmitBasicFormMalformedBody(t *testing.T) {
	setupTestDB(t)

	w := postBasicForm([]byte("{not json"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Invalid JSON data" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestSubmitBasicFormForwardedFor(t *testing.T) {
	setupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/submit-basic-form/", SubmitBasicForm)

	body, _ := json.Marshal(map[string]string{
		"name": "Ada", "email": "a@b.c", "phone": "1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/submit-basic-form/", bytes.NewReader(body))
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	req.RemoteAddr = "10.0.0.1:44000"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var row forms.BasicFormSubmission
	database.DB.First(&row)
	if row.IPAddress != "198.51.100.7" {
		t.Errorf("ip = %q, want first forwarded-for entry", row.IPAddress)
	}
}
