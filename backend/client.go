// Package backend is the HTTP client for the external reservation API. All
// room and reservation state lives there; this client only moves JSON.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"hotel-frontend/models"
)

// APIError is an application-level failure the backend reported inside a
// well-formed envelope, or a non-2xx transport status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// envelope is the backend's response wrapper. success:false is an application
// error even on a 200.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ReservationPayload is the POST /reservations body.
type ReservationPayload struct {
	RoomID          string `json:"roomId"`
	GuestName       string `json:"guestName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// Client talks to the reservation backend. Construct one with NewClient and
// pass it in; there is no package-level instance.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

// NewClient builds a backend client. anonKey is the bearer credential used
// when a request carries no session token.
func NewClient(baseURL, anonKey string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: timeout},
		cb:      newBreaker("reservation-backend", log),
		log:     log,
	}
}

func newBreaker(name string, log *logrus.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("circuit breaker %q changed from %s to %s", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Application errors mean the backend is healthy enough to
			// reject us; only transport-level failures should trip.
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
		},
	})
}

// ListRooms fetches the full room catalogue.
func (c *Client) ListRooms(ctx context.Context, token string) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", token, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListReservations fetches every reservation visible to the caller.
func (c *Client) ListReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", token, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation submits a booking. The backend assigns the id, sets
// status=confirmed and computes the authoritative total.
func (c *Client) CreateReservation(ctx context.Context, token string, payload ReservationPayload) (models.Reservation, error) {
	var created models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", token, payload, &created); err != nil {
		return models.Reservation{}, err
	}
	return created, nil
}

// UpdateReservationStatus patches a reservation's status and returns the
// updated record.
func (c *Client) UpdateReservationStatus(ctx context.Context, token, id, status string) (models.Reservation, error) {
	var updated models.Reservation
	path := fmt.Sprintf("/reservations/%s/status", id)
	if err := c.do(ctx, http.MethodPatch, path, token, statusPayload{Status: status}, &updated); err != nil {
		return models.Reservation{}, err
	}
	return updated, nil
}

// DeleteReservation removes a reservation.
func (c *Client) DeleteReservation(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+id, token, nil, nil)
}

// do performs one request through the circuit breaker and decodes the
// {success,data}/{success,error} envelope into out.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.doOnce(ctx, method, path, token, body, out)
	})
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer(token))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reservation backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("malformed backend envelope: %w", err)
	}
	if !env.Success {
		status := resp.StatusCode
		if status >= 200 && status < 300 {
			// A clean transport status still carries an application error.
			status = http.StatusBadRequest
		}
		return &APIError{StatusCode: status, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode backend data: %w", err)
		}
	}
	return nil
}

func (c *Client) bearer(token string) string {
	if token != "" {
		return token
	}
	return c.anonKey
}
