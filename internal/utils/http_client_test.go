package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	c1, c2 := NewHTTPClient(), NewHTTPClient()

	require.NotNil(t, c1.Client)
	assert.NotSame(t, c1.Client, c2.Client)
	assert.Zero(t, c1.RetryCount)
}

func TestNewHTTPClient_SendsDefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL + "/api/articles")

	require.NoError(t, err)
	// 503 не повторяется
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, UserAgent, got.Get("User-Agent"))
}
