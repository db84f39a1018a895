package opendata

import (
	"archive/zip"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestFetcher_Fetch(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"json/acteur/PA1.json": `{"acteur": {"uid": "PA1"}}`,
		"json/acteur/PA2.json": `{"acteur": {"uid": "PA2"}}`,
		"json/organe/PO1.json": `{"organe": {"uid": "PO1"}}`,
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	}))
	defer srv.Close()

	f := NewFetcher(Config{}, testLogger())

	docs, err := f.Fetch(context.Background(), DatasetActeurs, srv.URL, nil)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	acteurs, err := f.Fetch(context.Background(), DatasetActeurs, srv.URL, func(path string) bool {
		return strings.Contains(path, "/acteur/")
	})
	require.NoError(t, err)
	assert.Len(t, acteurs, 2)
}

func TestFetcher_CacheHit(t *testing.T) {
	archive := buildZip(t, map[string]string{"a.json": `{}`})

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write(archive)
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheTTL: time.Hour}, testLogger())

	_, err := f.Fetch(context.Background(), DatasetScrutins, srv.URL, nil)
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), DatasetScrutins, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), requests.Load())
}

func TestFetcher_CacheIsPerDataset(t *testing.T) {
	archive := buildZip(t, map[string]string{"a.json": `{}`})

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write(archive)
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheTTL: time.Hour}, testLogger())

	_, err := f.Fetch(context.Background(), DatasetScrutins, srv.URL, nil)
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), DatasetReunions, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), requests.Load())
}

func TestFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewFetcher(Config{}, testLogger())

	_, err := f.Fetch(context.Background(), DatasetActeurs, srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestFetcher_SkipsMalformedEntries(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"good.json":   `{"acteur": {"uid": "PA1"}}`,
		"broken.json": `{"acteur": `,
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	f := NewFetcher(Config{}, testLogger())

	docs, err := f.Fetch(context.Background(), DatasetActeurs, srv.URL, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "good.json", docs[0].Path)
}

func TestFetcher_NotAZip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an archive"))
	}))
	defer srv.Close()

	f := NewFetcher(Config{}, testLogger())

	_, err := f.Fetch(context.Background(), DatasetActeurs, srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open archive")
}
