package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func jsonRequest(t *testing.T, method, url string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, url, bytes.NewBuffer(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestRegister(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w, c := jsonRequest(t, "POST", "/api/auth/register", gin.H{
		"nickname":   "alice",
		"login":      "alice",
		"email":      "alice@example.com",
		"password":   "password123",
		"dayOfBirth": "2000-05-10",
	})

	Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response.Token)
	assert.NotEmpty(t, response.User.ID)
	assert.Equal(t, "alice", response.User.Nickname)

	// Credentials and key material never appear in responses
	assert.NotContains(t, w.Body.String(), "password123")
	assert.NotContains(t, w.Body.String(), "privateKey")

	// Keys are generated and stored at registration
	var stored models.User
	database.DB.First(&stored, "id = ?", response.User.ID)
	assert.NotEmpty(t, stored.PublicKey)
	assert.NotEmpty(t, stored.PrivateKey)
}

func TestRegister_ValidationErrors(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{
		Nickname: "alice",
		Login:    "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	})

	underage := time.Now().AddDate(-10, 0, 0).Format("2006-01-02")
	w, c := jsonRequest(t, "POST", "/api/auth/register", gin.H{
		"nickname":   "alice",
		"login":      "alice",
		"email":      "alice@example.com",
		"password":   "short",
		"dayOfBirth": underage,
	})

	Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// All problems are reported at once, not one per round-trip
	var response struct {
		Errors []string `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Errors, 5)
}

func TestLogin(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	database.DB.Create(&models.User{
		Nickname: "alice",
		Login:    "alice",
		Email:    "alice@example.com",
		Password: string(hash),
	})

	w, c := jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"login":    "alice",
		"password": "password123",
	})
	Login(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	w, c = jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"login":    "alice",
		"password": "wrong-password",
	})
	Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
