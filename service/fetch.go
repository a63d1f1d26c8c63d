package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/RobsonJunqueira/contrato-explorer-ui/config"
	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// ErrStoreUnavailable marks a failed or malformed bulk read of the contracts
// table. Callers must degrade to the built-in sample collection instead of
// propagating it to the UI as a hard failure.
var ErrStoreUnavailable = errors.New("contracts store unavailable")

// ContractsAPI reads the full contract collection from the upstream
// reporting endpoint.
type ContractsAPI struct {
	config     *config.StoreConfig
	httpClient *http.Client
}

// rowsPayload is the reporting endpoint's envelope: all rows, positional
// columns.
type rowsPayload struct {
	Data struct {
		Rows [][]any `json:"rows"`
	} `json:"data"`
}

func NewContractsAPI(cfg *config.StoreConfig) *ContractsAPI {
	return &ContractsAPI{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// FetchAll retrieves and normalizes every contract row. Transport errors,
// non-success responses and structurally invalid payloads all surface as
// ErrStoreUnavailable; a bounded number of retries is attempted first.
func (s *ContractsAPI) FetchAll(ctx context.Context) ([]model.Contract, error) {
	attempts := s.config.Retries + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		contracts, err := s.fetchOnce(ctx)
		if err == nil {
			return contracts, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, lastErr)
}

func (s *ContractsAPI) fetchOnce(ctx context.Context) ([]model.Contract, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var payload rowsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if payload.Data.Rows == nil {
		return nil, fmt.Errorf("invalid response format: missing data.rows")
	}

	contracts := make([]model.Contract, 0, len(payload.Data.Rows))
	for i, row := range payload.Data.Rows {
		contracts = append(contracts, model.ContractFromRow(row, i))
	}
	return contracts, nil
}

// LoadCollection fetches the full collection, substituting the sample set
// when the store is unreachable. The second return value reports whether the
// fallback was used.
func LoadCollection(ctx context.Context, api *ContractsAPI) ([]model.Contract, bool) {
	contracts, err := api.FetchAll(ctx)
	if err != nil {
		slog.Warn("falling back to sample contracts", "error", err)
		return model.SampleContracts(), true
	}
	return contracts, false
}
