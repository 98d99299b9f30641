package weather

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/w32blaster/bot-current-weather/structs"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client asks OpenWeatherMap for the current weather. Results are never cached,
// each lookup is one HTTP request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient the apiKey is resolved once at startup and kept for the process lifetime
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ByPlaceName returns nil observation if the provider doesn't know such place
func (c *Client) ByPlaceName(ctx context.Context, name string) (*structs.WeatherObservation, error) {
	params := url.Values{}
	params.Set("q", name)
	return c.lookup(ctx, params)
}

// ByCoordinates returns nil observation if the provider has nothing for that point
func (c *Client) ByCoordinates(ctx context.Context, lat, lon float64) (*structs.WeatherObservation, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.lookup(ctx, params)
}

func (c *Client) lookup(ctx context.Context, params url.Values) (*structs.WeatherObservation, error) {
	params.Set("appid", c.apiKey)
	endpoint := c.baseURL + "/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	// place not found
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(payload)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Err: err}
	}

	return parseObservation(body)
}

// url.Error carries the full URL, and the URL carries the API key
func redactKey(err error, apiKey string) error {
	if urlErr, ok := err.(*url.Error); ok && apiKey != "" {
		urlErr.URL = strings.Replace(urlErr.URL, apiKey, "REDACTED", -1)
	}
	return err
}
