package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/jwtutil"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB wires an in-memory database into the global handle the
// handlers read from.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Sale{},
		&model.InventoryMovement{},
		&model.Expense{},
		&model.Vehicle{},
		&model.CreditPayment{},
	)
	require.NoError(t, err)

	database.DB = db
	return db
}

// newContext builds an echo context for a handler call. A non-nil body is
// marshalled as JSON.
func newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser stores authenticated claims in the context the way the auth
// middleware does.
func asUser(c echo.Context, user *model.User) {
	c.Set("user", &jwtutil.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
