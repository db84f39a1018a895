package opendata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"assemblee_syncer/internal/domain"
)

// ClientConfig carries the legislature-parameterized archive URL templates
// (one %d verb each).
type ClientConfig struct {
	ActeursURL  string
	ReunionsURL string
	ScrutinsURL string
	DossiersURL string
}

// Client binds the archive fetcher to the dataset URLs and decoders. One
// archive (acteurs) holds both deputy and organe documents, distinguished by
// document shape.
type Client struct {
	fetcher *Fetcher
	cfg     ClientConfig
	logger  *slog.Logger
}

func NewClient(fetcher *Fetcher, cfg ClientConfig, logger *slog.Logger) *Client {
	return &Client{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.With("component", "opendata_client"),
	}
}

func jsonEntry(path string) bool {
	return strings.HasSuffix(path, ".json")
}

// The acteurs archive mixes deputy and organe documents, and entry naming
// differs between export generations. Both fetches decode every JSON entry
// and rely on the decoders returning nothing for foreign shapes.
func (c *Client) FetchActeurs(ctx context.Context, legislature int) ([]Acteur, error) {
	docs, err := c.fetcher.Fetch(ctx, DatasetActeurs, fmt.Sprintf(c.cfg.ActeursURL, legislature), jsonEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch acteurs: %w", err)
	}

	var acteurs []Acteur
	for _, doc := range docs {
		decoded, err := DecodeActeurs(doc)
		if err != nil {
			c.logger.Warn("skipping malformed acteur entry", "entry", doc.Path, "error", err)
			continue
		}
		acteurs = append(acteurs, decoded...)
	}
	return acteurs, nil
}

func (c *Client) FetchOrganes(ctx context.Context, legislature int) ([]domain.Organe, error) {
	docs, err := c.fetcher.Fetch(ctx, DatasetActeurs, fmt.Sprintf(c.cfg.ActeursURL, legislature), jsonEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch organes: %w", err)
	}

	var organes []domain.Organe
	for _, doc := range docs {
		decoded, err := DecodeOrganes(doc)
		if err != nil {
			c.logger.Warn("skipping malformed organe entry", "entry", doc.Path, "error", err)
			continue
		}
		organes = append(organes, decoded...)
	}
	return organes, nil
}

func (c *Client) FetchReunions(ctx context.Context, legislature int) ([]Reunion, error) {
	url := fmt.Sprintf(c.cfg.ReunionsURL, legislature)
	docs, err := c.fetcher.Fetch(ctx, DatasetReunions, url, jsonEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch reunions: %w", err)
	}

	var reunions []Reunion
	for _, doc := range docs {
		decoded, err := DecodeReunions(doc)
		if err != nil {
			c.logger.Warn("skipping malformed reunion entry", "entry", doc.Path, "error", err)
			continue
		}
		for i := range decoded {
			decoded[i].SourceURL = url
		}
		reunions = append(reunions, decoded...)
	}
	return reunions, nil
}

func (c *Client) FetchScrutins(ctx context.Context, legislature int) ([]Scrutin, error) {
	docs, err := c.fetcher.Fetch(ctx, DatasetScrutins, fmt.Sprintf(c.cfg.ScrutinsURL, legislature), jsonEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch scrutins: %w", err)
	}

	var scrutins []Scrutin
	for _, doc := range docs {
		decoded, err := DecodeScrutins(doc)
		if err != nil {
			c.logger.Warn("skipping malformed scrutin entry", "entry", doc.Path, "error", err)
			continue
		}
		scrutins = append(scrutins, decoded...)
	}
	return scrutins, nil
}

func (c *Client) FetchDossiers(ctx context.Context, legislature int) ([]DossierDoc, error) {
	docs, err := c.fetcher.Fetch(ctx, DatasetDossiers, fmt.Sprintf(c.cfg.DossiersURL, legislature), jsonEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch dossiers: %w", err)
	}

	var dossiers []DossierDoc
	for _, doc := range docs {
		decoded, err := DecodeDossiers(doc)
		if err != nil {
			c.logger.Warn("skipping malformed dossier entry", "entry", doc.Path, "error", err)
			continue
		}
		dossiers = append(dossiers, decoded...)
	}
	return dossiers, nil
}
