package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/internal/domain/repository"
	"flight-tracker-service/pkg/logger"
)

// HTTPFlightLookupRepository resolves flight details from a remote lookup API
type HTTPFlightLookupRepository struct {
	logger  logger.Logger
	baseURL string
	client  *http.Client
}

// NewHTTPFlightLookupRepository creates a new lookup repository.
// client carries auth and timeout policy; nil means http.DefaultClient.
func NewHTTPFlightLookupRepository(baseURL string, client *http.Client, logger logger.Logger) repository.FlightLookupRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFlightLookupRepository{
		logger:  logger,
		baseURL: baseURL,
		client:  client,
	}
}

type lookupResponse struct {
	Success bool                  `json:"success"`
	Data    *entity.FlightDetails `json:"data"`
	Error   struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Lookup calls GET {baseURL}/api/v1/flights/lookup
func (r *HTTPFlightLookupRepository) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.FlightDetails, error) {
	query := url.Values{}
	query.Set("flightNumber", req.FlightNumber)
	query.Set("airline", req.Airline)
	query.Set("date", req.Date)

	endpoint := fmt.Sprintf("%s/api/v1/flights/lookup?%s", r.baseURL, query.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response lookupResponse
	if resp.StatusCode != http.StatusOK {
		message := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&response); err == nil && response.Error.Message != "" {
			message = response.Error.Message
		}
		return nil, fmt.Errorf("lookup service returned status %d: %s", resp.StatusCode, message)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("lookup failed: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	details := response.Data
	if details == nil {
		details = &entity.FlightDetails{}
	}

	r.logger.Debug("Flight details resolved",
		"flightNumber", req.FlightNumber,
		"origin", details.Origin,
		"destination", details.Destination)

	return details, nil
}
