package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/verify", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			json.NewEncoder(w).Encode(map[string]string{"user_id": "user-1", "role": "customer"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, nil)

	identity, err := client.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.False(t, identity.IsAdmin())

	_, err = client.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPaymentClient_CreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3405", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "order-1", r.PostForm.Get("metadata[order_id]"))

		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret",
		})
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, "sk_test", nil)

	intent, err := client.CreateIntent(context.Background(), "order-1", 3405, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestPaymentClient_GetPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"id":         "pi_123",
			"status":     "succeeded",
			"card_last4": "4242",
			"card_brand": "visa",
		})
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, "sk_test", nil)

	payment, err := client.GetPayment(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", payment.Status)
	assert.Equal(t, "4242", payment.CardLast4)
}
