package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"

	"github.com/sirupsen/logrus"
)

// Client talks to the public NASA endpoints. The base urls live on the
// struct so tests can point them at a local stub.
type Client struct {
	apiKey     string
	httpClient *http.Client

	ApodURL    string
	MarsURL    string
	EpicURL    string
	EpicImgURL string
	SearchURL  string
}

func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = consts.DemoKey
	}

	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ApodURL:    consts.ApodURL,
		MarsURL:    consts.MarsURL,
		EpicURL:    consts.EpicURL,
		EpicImgURL: consts.EpicImgURL,
		SearchURL:  consts.SearchURL,
	}
}

// Apod fetches the picture-of-the-day record. thumbs is always requested
// so video records carry a still image too.
func (c *Client) Apod(ctx context.Context) (*blackhole.ApodModel, error) {

	u, err := makeRequest(c.ApodURL, map[string]string{
		consts.ParamApiKey: c.apiKey,
		consts.ParamThumbs: consts.True,
	})
	if err != nil {
		return nil, err
	}

	var md blackhole.ApodModel
	if err := c.getJSON(ctx, u, &md); err != nil {
		return nil, err
	}

	return &md, nil
}

// marsResponse mirrors the rover photos payload.
type marsResponse struct {
	Photos []struct {
		ID     int    `json:"id"`
		ImgSrc string `json:"img_src"`
		Sol    int    `json:"sol"`
		Camera struct {
			Name     string `json:"name"`
			FullName string `json:"full_name"`
		} `json:"camera"`
		Rover struct {
			Name string `json:"name"`
		} `json:"rover"`
		EarthDate string `json:"earth_date"`
	} `json:"photos"`
}

// MarsPhotos queries one rover for one sol. camera is optional, empty
// means all cameras. The caller is expected to have clamped sol already.
func (c *Client) MarsPhotos(ctx context.Context, rover, camera string, sol int) ([]blackhole.MarsPhoto, error) {

	params := map[string]string{
		consts.ParamApiKey: c.apiKey,
		consts.ParamSol:    fmt.Sprintf("%d", sol),
	}
	if camera != "" {
		params[consts.ParamCamera] = camera
	}

	u, err := makeRequest(c.MarsURL+"/"+rover+"/photos", params)
	if err != nil {
		return nil, err
	}

	var resp marsResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	photos := make([]blackhole.MarsPhoto, 0, len(resp.Photos))
	for _, p := range resp.Photos {
		photos = append(photos, blackhole.MarsPhoto{
			ID:             p.ID,
			ImgSrc:         p.ImgSrc,
			Camera:         p.Camera.Name,
			CameraFullName: p.Camera.FullName,
			Rover:          p.Rover.Name,
			Sol:            p.Sol,
			EarthDate:      p.EarthDate,
		})
	}

	return photos, nil
}

// EpicFeed fetches the current natural-color list and derives the archive
// url for every item.
func (c *Client) EpicFeed(ctx context.Context) ([]blackhole.EpicItem, error) {

	u, err := makeRequest(c.EpicURL, map[string]string{
		consts.ParamApiKey: c.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var items []blackhole.EpicItem
	if err := c.getJSON(ctx, u, &items); err != nil {
		return nil, err
	}

	for i := range items {
		src, err := ImageURL(c.EpicImgURL, items[i], c.apiKey)
		if err != nil {
			return nil, err
		}
		items[i].ImgSrc = src
	}

	return items, nil
}

// searchResponse mirrors the image-library payload. Every item carries a
// data list with the caption and a links list with the actual files.
type searchResponse struct {
	Collection struct {
		Items []struct {
			Data []struct {
				Title string `json:"title"`
			} `json:"data"`
			Links []struct {
				Href string `json:"href"`
			} `json:"links"`
		} `json:"items"`
	} `json:"collection"`
}

// Search runs a free-text image-library query. Only items with at least
// one link are kept, the first link wins.
func (c *Client) Search(ctx context.Context, query string) ([]blackhole.SearchItem, error) {

	u, err := makeRequest(c.SearchURL, map[string]string{
		consts.ParamQuery: query,
		consts.ParamMedia: consts.MediaImage,
	})
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	var items []blackhole.SearchItem
	for _, it := range resp.Collection.Items {
		if len(it.Links) == 0 || len(it.Data) == 0 {
			continue
		}
		items = append(items, blackhole.SearchItem{
			Title: it.Data[0].Title,
			URL:   it.Links[0].Href,
		})
	}

	return items, nil
}

// makeRequest builds the request string from the base url and params.
func makeRequest(baseUrl string, params map[string]string) (string, error) {
	ur, err := url.Parse(baseUrl)
	if err != nil {
		return "", err
	}

	q := ur.Query()
	for k, v := range params {
		q.Set(k, v)
	}

	ur.RawQuery = q.Encode()
	return ur.String(), nil
}

// getJSON runs a GET and decodes the body into out. Any non-2xx status
// is an error, the body is logged for debugging.
func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.Warnf("upstream returned %d: %s", resp.StatusCode, body)
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
