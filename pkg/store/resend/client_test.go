package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var body struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			HTML    string   `json:"html"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Library <onboarding@resend.dev>", body.From)
		assert.Equal(t, []string{"curator@example.com"}, body.To)
		assert.Equal(t, "New book suggestion", body.Subject)
		assert.Contains(t, body.HTML, "Ficciones")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-456"}`))
	}))
	defer server.Close()

	client := NewClient("re_test_key", WithBaseURL(server.URL))

	id, err := client.Send(context.Background(), Email{
		From:    "Library <onboarding@resend.dev>",
		To:      "curator@example.com",
		Subject: "New book suggestion",
		HTML:    "<p>Ficciones</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "email-456", id)
}

func TestSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"API key is invalid"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))

	_, err := client.Send(context.Background(), Email{To: "curator@example.com"})

	assert.ErrorContains(t, err, "API key is invalid")
}
