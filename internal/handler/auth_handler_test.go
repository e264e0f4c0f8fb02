package handler

import (
	"net/http"
	"testing"

	"gas-service/internal/model"
	"gas-service/pkg/config"
	"gas-service/pkg/jwtutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := &model.User{
		Name:     "Dono",
		Email:    "dono@test.com",
		Password: string(hash),
		Role:     model.RoleAdministrativo,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	admin := seedAdmin(t, db, "segredo123")

	c, rec := newContext(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    admin.Email,
		"password": "segredo123",
	})

	require.NoError(t, Login(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.Email, resp.User.Email)
	assert.Equal(t, model.RoleAdministrativo, resp.User.Role)

	claims, err := jwtutil.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, model.RoleAdministrativo, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	admin := seedAdmin(t, db, "segredo123")

	c, rec := newContext(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    admin.Email,
		"password": "errada",
	})

	require.NoError(t, Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	setupTestDB(t)
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	c, rec := newContext(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@test.com",
		"password": "qualquer",
	})

	require.NoError(t, Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
