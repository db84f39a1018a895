package opendata

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Dataset identifies one logical open-data archive. The cache is keyed by
// dataset, not URL, so legislature-parameterized URLs share one entry.
type Dataset string

const (
	DatasetActeurs  Dataset = "acteurs"
	DatasetReunions Dataset = "reunions"
	DatasetScrutins Dataset = "scrutins"
	DatasetDossiers Dataset = "dossiers"
)

// Document is one JSON member file extracted from an archive.
type Document struct {
	Path string
	Raw  json.RawMessage
}

// Config holds archive fetcher configuration.
type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Fetcher downloads open-data ZIP archives and extracts their JSON members.
// Successful results are cached per dataset with a TTL; the cache is only
// invalidated by expiry, never by writes.
type Fetcher struct {
	httpClient *http.Client
	cacheTTL   time.Duration
	logger     *slog.Logger

	mu    sync.Mutex
	cache map[Dataset]cacheEntry
}

type cacheEntry struct {
	docs      []Document
	expiresAt time.Time
}

func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cacheTTL:   cfg.CacheTTL,
		logger:     logger.With("component", "archive_fetcher"),
	}
}

// Fetch returns the parsed JSON documents from the archive at url whose entry
// path satisfies match. A cached result within the TTL is reused without
// re-downloading. A non-2xx response fails the whole fetch; a malformed
// individual entry is logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, dataset Dataset, url string, match func(path string) bool) ([]Document, error) {
	f.mu.Lock()
	if entry, ok := f.cache[dataset]; ok && time.Now().Before(entry.expiresAt) {
		f.mu.Unlock()
		f.logger.Debug("archive cache hit", "dataset", dataset)
		return filterDocs(entry.docs, match), nil
	}
	f.mu.Unlock()

	docs, err := f.download(ctx, dataset, url)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.cache == nil {
		f.cache = make(map[Dataset]cacheEntry)
	}
	f.cache[dataset] = cacheEntry{docs: docs, expiresAt: time.Now().Add(f.cacheTTL)}
	f.mu.Unlock()

	return filterDocs(docs, match), nil
}

func (f *Fetcher) download(ctx context.Context, dataset Dataset, url string) ([]Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/zip")
	req.Header.Set("User-Agent", "AssembleeSyncer/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download archive: unexpected status %d", resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read archive body: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var docs []Document
	var skipped int
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			f.logger.Warn("failed to open archive entry", "dataset", dataset, "entry", file.Name, "error", err)
			skipped++
			continue
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			f.logger.Warn("failed to read archive entry", "dataset", dataset, "entry", file.Name, "error", err)
			skipped++
			continue
		}

		if !json.Valid(raw) {
			f.logger.Warn("malformed json entry skipped", "dataset", dataset, "entry", file.Name)
			skipped++
			continue
		}

		docs = append(docs, Document{Path: file.Name, Raw: raw})
	}

	f.logger.Info("archive downloaded",
		"dataset", dataset,
		"bytes", len(buf),
		"entries", len(docs),
		"skipped", skipped,
	)

	return docs, nil
}

func filterDocs(docs []Document, match func(path string) bool) []Document {
	if match == nil {
		return docs
	}
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if match(d.Path) {
			out = append(out, d)
		}
	}
	return out
}
