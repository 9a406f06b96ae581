package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"github.com/yourname/wellnessgrid/internal"
)

func nopLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func TestAskForwardsQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ask", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "what is hypoglycemia?", body["question"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":"what is hypoglycemia?","answer":"Low blood sugar.","sources":["nih.gov"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nopLogger())
	answer, err := c.Ask(context.Background(), "what is hypoglycemia?")
	require.NoError(t, err)
	assert.Equal(t, "Low blood sugar.", answer.Answer)
	assert.Equal(t, []string{"nih.gov"}, answer.Sources)
}

func TestAskSidecarError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nopLogger())
	_, err := c.Ask(context.Background(), "anything")
	assert.Error(t, err)
}

func TestAskUnconfigured(t *testing.T) {
	c := NewClient("", nopLogger())
	_, err := c.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
