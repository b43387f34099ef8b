package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"InvestSim/internal/model"
)

// DefaultBCBURL is the last observation of SGS series 432 (Selic target).
const DefaultBCBURL = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.432/dados/ultimos/1?formato=json"

const bcbDateLayout = "02/01/2006"

// BCBFetcher implements Fetcher using the Banco Central SGS public API.
type BCBFetcher struct {
	URL    string
	Client *http.Client
	Now    func() time.Time
}

// NewBCBFetcher creates a fetcher with optional proxy support.
func NewBCBFetcher(sourceURL, proxyURL string) *BCBFetcher {
	if sourceURL == "" {
		sourceURL = DefaultBCBURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BCBFetcher{
		URL: sourceURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Now: time.Now,
	}
}

func (f *BCBFetcher) Name() string { return "bcb" }

// sgsPoint is one observation in the SGS JSON response.
type sgsPoint struct {
	Data  string `json:"data"`  // dd/mm/yyyy
	Valor string `json:"valor"` // percent per year, dot decimal
}

func (f *BCBFetcher) FetchSelic(ctx context.Context) (model.Benchmark, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return model.Benchmark{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Benchmark{}, fmt.Errorf("bcb fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Benchmark{}, fmt.Errorf("bcb read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Benchmark{}, fmt.Errorf("bcb: status %d, body: %s", resp.StatusCode, string(body))
	}

	var points []sgsPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return model.Benchmark{}, fmt.Errorf("bcb decode: %w", err)
	}
	if len(points) == 0 {
		return model.Benchmark{}, fmt.Errorf("bcb: no data returned")
	}

	last := points[len(points)-1]
	pct, err := strconv.ParseFloat(strings.TrimSpace(last.Valor), 64)
	if err != nil {
		return model.Benchmark{}, fmt.Errorf("bcb: bad value %q: %w", last.Valor, err)
	}
	ref, err := time.ParseInLocation(bcbDateLayout, strings.TrimSpace(last.Data), time.Local)
	if err != nil {
		return model.Benchmark{}, fmt.Errorf("bcb: bad date %q: %w", last.Data, err)
	}

	now := f.now()
	return model.Benchmark{
		Selic:         pct / 100,
		ReferenceDate: clampToToday(ref, now),
		FetchedAt:     now,
	}, nil
}

func (f *BCBFetcher) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// clampToToday replaces a reference date in the future with today's date.
func clampToToday(ref, now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	if ref.After(today) {
		return today
	}
	return ref
}
