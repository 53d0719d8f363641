// Package ioannot describes datasets using the NCBI E-utilities catalog
// of Gene Expression Omnibus.
package ioannot

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/config"
	"golang.org/x/time/rate"
)

const retryDelay = time.Second

var errNotFound = errors.New("accession is not in the catalog")

// geo implements canned.Annotator for GEO series and datasets.
type geo struct {
	baseURL string
	apiKey  string
	retries int
	delay   time.Duration
	client  *http.Client
	limiter *rate.Limiter
}

// New creates an annotator for GEO accessions.
func New(cfg config.AnnotateConfig) canned.Annotator {
	retries := max(cfg.Retries, 1)
	return &geo{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		retries: retries,
		delay:   retryDelay,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(max(cfg.RateLimit, 1)), 1),
	}
}

type searchResult struct {
	IDs []string `xml:"IdList>Id"`
}

type summaryResult struct {
	Docs []struct {
		Items []struct {
			Name  string `xml:"Name,attr"`
			Value string `xml:",chardata"`
		} `xml:"Item"`
	} `xml:"DocSum"`
}

// Annotate fetches title and summary of a GEO accession. Other accessions
// get an empty annotation. Catalog failures are logged and result in
// canned.Placeholder.
func (g *geo) Annotate(ctx context.Context, accession string) canned.Annotation {
	res := canned.Placeholder(accession)
	if !canned.IsGEO(accession) {
		return res
	}

	title, summary, err := g.describe(ctx, strings.TrimSpace(accession))
	if err != nil {
		slog.Warn("Dataset annotation is unavailable",
			"accession", accession, "error", err)
		return res
	}

	res.Title = title
	res.Summary = summary
	res.LandingURL = canned.GEOLandingURL(accession)
	return res
}

func (g *geo) describe(
	ctx context.Context,
	accession string,
) (string, string, error) {
	var search searchResult
	params := url.Values{
		"db":   {"gds"},
		"term": {accession + "[Accession ID]"},
	}
	if err := g.get(ctx, "esearch.fcgi", params, &search); err != nil {
		return "", "", err
	}
	if len(search.IDs) == 0 {
		return "", "", errNotFound
	}

	var summary summaryResult
	params = url.Values{
		"db": {"gds"},
		"id": {strings.TrimSpace(search.IDs[0])},
	}
	if err := g.get(ctx, "esummary.fcgi", params, &summary); err != nil {
		return "", "", err
	}
	if len(summary.Docs) == 0 {
		return "", "", errNotFound
	}

	var title, desc string
	for _, item := range summary.Docs[0].Items {
		switch item.Name {
		case "title":
			title = strings.TrimSpace(item.Value)
		case "summary":
			desc = strings.TrimSpace(item.Value)
		}
	}
	return title, desc, nil
}

// get sends a rate limited GET request and decodes the XML response,
// retrying failed attempts with a fixed delay.
func (g *geo) get(
	ctx context.Context,
	endpoint string,
	params url.Values,
	out any,
) error {
	if g.apiKey != "" {
		params.Set("api_key", g.apiKey)
	}
	u := g.baseURL + "/" + endpoint + "?" + params.Encode()

	var err error
	for attempt := 1; attempt <= g.retries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		var raw []byte
		raw, err = g.getOnce(ctx, u)
		if err == nil {
			if err = xml.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("cannot decode %s response: %w", endpoint, err)
			}
			return nil
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return err
		}
		if attempt == g.retries {
			break
		}

		slog.Debug("Catalog request retrying",
			"endpoint", endpoint,
			"attempt", attempt,
			"retries", g.retries,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.delay):
		}
	}
	return err
}

func (g *geo) getOnce(ctx context.Context, u string) ([]byte, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}
	return raw, nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog returned HTTP %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}
