package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateService fetches the base-USD exchange-rate table from the external feed.
type rateService struct {
	feedURL    string
	httpClient *http.Client
}

// NewRateService creates a rate service for the given feed URL. A nil client
// falls back to http.DefaultClient.
func NewRateService(feedURL string, httpClient *http.Client) portssvc.RateSvcFacade {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &rateService{feedURL: feedURL, httpClient: httpClient}
}

// feedResponse covers the common wire shapes of public rate feeds: some send
// "base", others "base_code". Only the rates map is required.
type feedResponse struct {
	Base     string                     `json:"base"`
	BaseCode string                     `json:"base_code"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

// FetchRates retrieves the current rate table. Any transport or decode
// failure, or a table without rates, is reported as an upstream error.
func (s *rateService) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: rate feed unreachable: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate feed returned status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate feed response: %v", apperrors.ErrUpstream, err)
	}
	if len(feed.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate feed response carried no rates", apperrors.ErrUpstream)
	}

	base := feed.Base
	if base == "" {
		base = feed.BaseCode
	}
	if base == "" {
		base = "USD"
	}

	return &domain.RateTable{Base: base, Rates: feed.Rates}, nil
}
