package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
)

// Client is the thin HTTP client the gallery uses to talk to the
// blackhole server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given server, defaulting to a
// local instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// GetEnvOrDefault returns the value of an environment variable or a
// default value.
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(path string, query url.Values, out interface{}) error {

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server: %s", env.Message)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return json.Unmarshal(env.Data, out)
}

// Apod fetches today's picture of the day.
func (c *Client) Apod() (*blackhole.ApodModel, error) {
	var md blackhole.ApodModel
	if err := c.get("/v1/apod", nil, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// MarsPhotos fetches rover photos for one rover/camera/sol triple.
func (c *Client) MarsPhotos(rover, camera string, sol int) ([]blackhole.MarsPhoto, error) {

	q := url.Values{}
	q.Set("rover", rover)
	if camera != "" {
		q.Set("camera", camera)
	}
	q.Set("sol", strconv.Itoa(sol))

	var photos []blackhole.MarsPhoto
	if err := c.get("/v1/mars", q, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// EpicFeed fetches the current Earth feed.
func (c *Client) EpicFeed() ([]blackhole.EpicItem, error) {
	var items []blackhole.EpicItem
	if err := c.get("/v1/epic", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Search runs a free-text image search.
func (c *Client) Search(query string) ([]blackhole.SearchItem, error) {

	q := url.Values{}
	q.Set("q", query)

	var items []blackhole.SearchItem
	if err := c.get("/v1/search", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Surprise rolls a fresh random set for the home page.
func (c *Client) Surprise() ([]blackhole.SearchItem, error) {
	var items []blackhole.SearchItem
	if err := c.get("/v1/surprise", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
