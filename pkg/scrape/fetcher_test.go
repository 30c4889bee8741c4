package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchPassesPairAsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/results", r.URL.Path)
		require.Equal(t, "Vietnam", r.URL.Query().Get("country"))
		require.Equal(t, "Textiles & apparel", r.URL.Query().Get("industry"))
		w.Write([]byte(`<div id="results"></div>`))
	}))
	defer server.Close()

	f := NewFetcher(server.URL, time.Second)
	body, err := f.Fetch(context.Background(), "Vietnam", "Textiles & apparel")
	require.NoError(t, err)
	require.Equal(t, `<div id="results"></div>`, body)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	}))
	defer server.Close()

	f := NewFetcher(server.URL, time.Second)
	_, err := f.Fetch(context.Background(), "Vietnam", "Textiles")
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestFetchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(server.URL, time.Second)
	_, err := f.Fetch(ctx, "Vietnam", "Textiles")
	require.Error(t, err)
}
