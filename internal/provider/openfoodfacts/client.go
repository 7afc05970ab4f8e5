// ABOUTME: Minimal Open Food Facts search client for the lookup command.
// ABOUTME: Returns loosely-shaped records that go through analysis coercion.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harperreed/nosh/internal/analysis"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Client queries the Open Food Facts public API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type searchResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

// Search looks up foods by name and returns per-100g nutrition records.
// Records are intentionally loose; callers coerce them with analysis.CoerceEntry.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]analysis.Record, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 5
	}

	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		base, url.QueryEscape(strings.TrimSpace(query)), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "nosh/1.0 (+https://github.com/harperreed/nosh)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}

	var records []analysis.Record
	for _, p := range parsed.Products {
		name := strings.TrimSpace(p.ProductName)
		if name == "" {
			continue
		}
		if brand := strings.TrimSpace(p.Brands); brand != "" {
			name = name + " (" + brand + ")"
		}
		records = append(records, analysis.Record{
			"name":     name,
			"calories": nutrient(p.Nutriments, "energy-kcal"),
			"protein":  nutrient(p.Nutriments, "proteins"),
			"carbs":    nutrient(p.Nutriments, "carbohydrates"),
			"fat":      nutrient(p.Nutriments, "fat"),
			"fiber":    nutrient(p.Nutriments, "fiber"),
			"sugar":    nutrient(p.Nutriments, "sugars"),
		})
	}
	return records, nil
}

// nutrient reads the per-100g value for key, preferring the _100g variant.
// Off data is messy; values may be numbers or strings.
func nutrient(nutriments map[string]any, key string) any {
	if v, ok := nutriments[key+"_100g"]; ok {
		return v
	}
	return nutriments[key]
}
