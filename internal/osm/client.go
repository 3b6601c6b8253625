package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/arrival-spring/osm-phones-sub000/platform/config"
	"github.com/arrival-spring/osm-phones-sub000/platform/logger"
)

// Client fetches phone-tagged records from the Overpass API. Requests are
// rate limited because Overpass is a shared public service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      *Cache
	log        *logger.Logger
}

// NewClient creates an Overpass client. cache may be nil.
func NewClient(cfg config.OverpassConfig, cache *Cache, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetOverpassTimeout()},
		baseURL:    cfg.GetOverpassURL(),
		limiter:    rate.NewLimiter(rate.Limit(cfg.GetOverpassRate()), 1),
		cache:      cache,
		log:        log,
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FetchCountry returns every record in the country carrying at least one
// phone-like tag.
func (c *Client) FetchCountry(ctx context.Context, country string) ([]Record, error) {
	started := time.Now()
	cacheKey := "overpass:" + country

	if payload, ok := c.cache.Get(ctx, cacheKey); ok {
		records, err := decodeRecords(payload)
		if err == nil {
			c.log.FetchEvent(country, len(records), true, time.Since(started))
			return records, nil
		}
		// A corrupt cache entry falls through to the network.
		c.log.CacheError("decode", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := c.post(ctx, buildQuery(country))
	if err != nil {
		return nil, fmt.Errorf("overpass fetch for %s: %w", country, err)
	}
	records, err := decodeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("overpass response for %s: %w", country, err)
	}
	c.cache.Set(ctx, cacheKey, payload)
	c.log.FetchEvent(country, len(records), false, time.Since(started))
	return records, nil
}

func (c *Client) post(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return io.ReadAll(resp.Body)
}

func decodeRecords(payload []byte) ([]Record, error) {
	var response overpassResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(response.Elements))
	for _, element := range response.Elements {
		record := Record{
			ID:   element.ID,
			Type: element.Type,
			Tags: element.Tags,
			Lat:  element.Lat,
			Lon:  element.Lon,
		}
		if element.Center != nil {
			record.Lat = element.Center.Lat
			record.Lon = element.Center.Lon
		}
		records = append(records, record)
	}
	return records, nil
}

func buildQuery(country string) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:180];\n")
	fmt.Fprintf(&b, "area[\"ISO3166-1\"=%q][admin_level=2]->.country;\n(\n", country)
	for _, key := range PhoneKeys {
		fmt.Fprintf(&b, "  nwr[%q](area.country);\n", key)
	}
	b.WriteString(");\nout tags center;\n")
	return b.String()
}
