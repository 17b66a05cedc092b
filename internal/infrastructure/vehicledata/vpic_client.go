// Package vehicledata talks to the NHTSA vPIC catalogue.
package vehicledata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type vpicResponse[T any] struct {
	Count   int    `json:"Count"`
	Message string `json:"Message"`
	Results []T    `json:"Results"`
}

type vpicMake struct {
	MakeName string `json:"MakeName"`
}

type vpicModel struct {
	ModelName string `json:"Model_Name"`
}

type vpicDecoded struct {
	ModelYear string `json:"ModelYear"`
	Make      string `json:"Make"`
	Model     string `json:"Model"`
	Trim      string `json:"Trim"`
	ErrorCode string `json:"ErrorCode"`
	ErrorText string `json:"ErrorText"`
}

// Client implements the vehicle data provider against vPIC.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

var _ interfaces.IVehicleDataProvider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid vpic base url: %q", baseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Makes lists passenger car and truck makes. vPIC does not index makes by
// model year, so the year only feeds the log.
func (c *Client) Makes(ctx context.Context, year int) ([]string, error) {
	var out []string
	for _, vehicleType := range []string{"car", "truck"} {
		var resp vpicResponse[vpicMake]
		if err := c.getJSON(ctx, "/GetMakesForVehicleType/"+vehicleType, &resp); err != nil {
			c.logger.Warn("[vehicle][vpic] makes lookup failed", zap.Int("year", year), zap.Error(err))
			return nil, err
		}
		for _, m := range resp.Results {
			out = append(out, titleCase(m.MakeName))
		}
	}
	return out, nil
}

func (c *Client) Models(ctx context.Context, year int, vehicleMake string) ([]string, error) {
	path := "/GetModelsForMakeYear/make/" + url.PathEscape(vehicleMake) + "/modelyear/" + strconv.Itoa(year)
	var resp vpicResponse[vpicModel]
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Results))
	for _, m := range resp.Results {
		out = append(out, m.ModelName)
	}
	return out, nil
}

// DecodeVIN maps vPIC error codes onto the typed decode failures. Code "0"
// is a clean decode; anything else with year, make and model present is
// still usable.
func (c *Client) DecodeVIN(ctx context.Context, vin string) (entities.VehicleAttributes, error) {
	var resp vpicResponse[vpicDecoded]
	if err := c.getJSON(ctx, "/DecodeVinValues/"+url.PathEscape(vin), &resp); err != nil {
		return entities.VehicleAttributes{}, err
	}
	if len(resp.Results) == 0 {
		return entities.VehicleAttributes{}, interfaces.ErrVINNotDecodable
	}
	d := resp.Results[0]
	year, _ := strconv.Atoi(strings.TrimSpace(d.ModelYear))
	attrs := entities.VehicleAttributes{
		Year:  year,
		Make:  titleCase(d.Make),
		Model: strings.TrimSpace(d.Model),
		Trim:  strings.TrimSpace(d.Trim),
		VIN:   vin,
	}

	switch {
	case attrs.Year == 0 && attrs.Make == "" && attrs.Model == "":
		return entities.VehicleAttributes{}, fmt.Errorf("%w: %s", interfaces.ErrVINNotDecodable, strings.TrimSpace(d.ErrorText))
	case attrs.Year == 0 || attrs.Make == "" || attrs.Model == "":
		return attrs, interfaces.ErrVINPartialData
	}
	if code := firstCode(d.ErrorCode); code != "0" {
		c.logger.Debug("[vehicle][vpic] decoded with warnings", zap.String("vin", vin), zap.String("error_code", d.ErrorCode))
	}
	return attrs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = url.Values{"format": []string{"json"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("vpic request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", interfaces.ErrVehicleServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", interfaces.ErrVehicleServiceUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("vpic status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrVehicleServiceUnavailable, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", interfaces.ErrVehicleServiceUnavailable, err)
	}
	return nil
}

// firstCode returns the leading code of a vPIC "0,1,5" style list.
func firstCode(codes string) string {
	code, _, _ := strings.Cut(strings.TrimSpace(codes), ",")
	return strings.TrimSpace(code)
}

var acronymMakes = map[string]bool{"bmw": true, "gmc": true, "mg": true, "vw": true}

// titleCase turns vPIC's upper-case make names into display form.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if acronymMakes[w] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
