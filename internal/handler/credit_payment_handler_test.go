package handler

import (
	"net/http"
	"testing"

	"gas-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCreditPayment(t *testing.T) {
	db := setupTestDB(t)
	customer := &model.Customer{Name: "Carlos", Code: "CLI002"}
	require.NoError(t, db.Create(customer).Error)

	c, rec := newContext(t, http.MethodPost, "/api/credit-payments", CreditPaymentRequest{
		CustomerID: customer.ID,
		Amount:     50,
		Notes:      "Pagamento parcial",
	})

	require.NoError(t, CreateCreditPayment(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var payment model.CreditPayment
	decodeBody(t, rec, &payment)
	assert.Equal(t, customer.ID, payment.CustomerID)
	assert.InDelta(t, 50.0, payment.Amount, 1e-9)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestCreateCreditPaymentUnknownCustomer(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/credit-payments", CreditPaymentRequest{
		CustomerID: 500,
		Amount:     50,
	})

	require.NoError(t, CreateCreditPayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCreditPaymentsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	customer := &model.Customer{Name: "Carlos", Code: "CLI002"}
	require.NoError(t, db.Create(customer).Error)

	require.NoError(t, db.Create(&model.CreditPayment{CustomerID: customer.ID, Amount: 10}).Error)
	require.NoError(t, db.Create(&model.CreditPayment{CustomerID: customer.ID, Amount: 20}).Error)

	c, rec := newContext(t, http.MethodGet, "/api/credit-payments", nil)

	require.NoError(t, ListCreditPayments(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var payments []model.CreditPayment
	decodeBody(t, rec, &payments)
	require.Len(t, payments, 2)
}
