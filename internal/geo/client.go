// Package geo acquires the observer location from an IP geolocation
// service.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"time"

	"cloudeng.io/net/ratecontrol"
	"github.com/google/uuid"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// Coordinates is a located position with its IANA time zone.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	City      string
	TimeZone  string
}

// UserLocation converts c into an accurate domain location.
func (c Coordinates) UserLocation(at time.Time) domain.UserLocation {
	return domain.UserLocation{
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		CityName:   c.City,
		TimeZone:   c.TimeZone,
		IsAccurate: true,
		Source:     domain.SourceGeo,
		UpdatedAt:  at,
	}
}

// Locator finds the current observer position.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// DisabledLocator always fails with ErrDisabled.
type DisabledLocator struct{}

func (DisabledLocator) Locate(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrDisabled
}

type httpLocator struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPLocator creates a Locator that queries cfg.Endpoint, which must
// answer with an ip-api.com style JSON document.
func NewHTTPLocator(cfg Config, observer Observer) Locator {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpLocator{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type lookupResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Timezone string  `json:"timezone"`
}

func (c *httpLocator) Locate(ctx context.Context) (Coordinates, error) {
	start := time.Now()
	requestID := uuid.NewString()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	var lastErr error
	made := 0
	backoff := ratecontrol.NewExpontentialBackoff(
		time.Duration(c.cfg.RetryBackoffMs)*time.Millisecond, max(c.cfg.MaxRetries, 0))

	for {
		made++
		resp, err := c.doRequest(ctx)
		if err == nil {
			coords, verr := resp.coordinates()
			if verr == nil {
				c.observer.OnLookupComplete(LookupEvent{
					RequestID: requestID,
					Endpoint:  c.cfg.Endpoint,
					Attempts:  made,
					LatencyMs: time.Since(start).Milliseconds(),
					Success:   true,
				})
				return coords, nil
			}
			err = verr
		}
		lastErr = err

		// A refusal or a malformed answer will not change on retry.
		if ctx.Err() != nil || errors.Is(err, ErrDenied) || errors.Is(err, ErrInvalidResponse) {
			break
		}
		if done, _ := backoff.Wait(ctx, nil); done {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observer.OnLookupComplete(LookupEvent{
		RequestID: requestID,
		Endpoint:  c.cfg.Endpoint,
		Attempts:  made,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return Coordinates{}, err
}

func (c *httpLocator) doRequest(ctx context.Context) (*lookupResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch httpResp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrDenied, httpResp.StatusCode)
	default:
		return nil, fmt.Errorf("geolocation returned status %d: %s", httpResp.StatusCode, string(body))
	}

	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrDenied, resp.Message)
	}
	return &resp, nil
}

func (r *lookupResponse) coordinates() (Coordinates, error) {
	if math.IsNaN(r.Lat) || math.IsNaN(r.Lon) || r.Lat < -90 || r.Lat > 90 || r.Lon < -180 || r.Lon > 180 {
		return Coordinates{}, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidResponse, r.Lat, r.Lon)
	}
	if r.Timezone == "" {
		return Coordinates{}, fmt.Errorf("%w: missing timezone", ErrInvalidResponse)
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return Coordinates{}, fmt.Errorf("%w: timezone %q: %v", ErrInvalidResponse, r.Timezone, err)
	}
	return Coordinates{Latitude: r.Lat, Longitude: r.Lon, City: r.City, TimeZone: r.Timezone}, nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrDenied), errors.Is(err, ErrInvalidResponse):
		return err
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrDenied):
		return "DENIED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
