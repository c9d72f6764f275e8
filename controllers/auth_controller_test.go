package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MindTrackGo/config"
	"MindTrackGo/models"
	"MindTrackGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupTestDB(t)

	ac := AuthController{}
	r := gin.New()
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/login", ac.Login)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	r := newAuthRouter(t)

	rec := postJSON(r, "/auth/register", models.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, config.DB.First(&user, "username = ?", "alice").Error)
	// 邮箱统一小写存储
	assert.Equal(t, "alice@example.com", user.Email)
	// 密码以bcrypt哈希存储
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newAuthRouter(t)

	req := models.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"}
	require.Equal(t, http.StatusCreated, postJSON(r, "/auth/register", req).Code)

	req.Username = "bob"
	assert.Equal(t, http.StatusConflict, postJSON(r, "/auth/register", req).Code)
}

func TestRegisterMissingFields(t *testing.T) {
	r := newAuthRouter(t)

	rec := postJSON(r, "/auth/register", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newAuthRouter(t)

	// 未注册邮箱
	rec := postJSON(r, "/auth/login", models.LoginRequest{Email: "nobody@b.com", Password: "whatever"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 密码错误
	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, config.DB.Create(&models.User{
		ID:       utils.GenerateID(),
		Username: "carol",
		Email:    "carol@b.com",
		Password: string(hashed),
	}).Error)

	rec = postJSON(r, "/auth/login", models.LoginRequest{Email: "carol@b.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
