package tonindex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client talks to a toncenter-style v2 indexer. The upstream is
// unauthenticated and best-effort; a circuit breaker keeps a flapping
// indexer from stalling every poll tick on a full request timeout.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logs    *zap.SugaredLogger
}

func NewClient(logger *zap.SugaredLogger, baseURL string) *Client {
	settings := gobreaker.Settings{
		Name:        "toncenter",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logs:    logger,
	}
}

// GetTransactions fetches up to limit recent transactions of the account
// and returns the ones that survive classification and normalization.
// Rejected payloads are logged as skips, not errors.
func (c *Client) GetTransactions(ctx context.Context, accountID string, limit int) ([]Transfer, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchTransactions(ctx, accountID, limit)
	})
	if err != nil {
		return nil, err
	}

	raws := result.([]RawTransaction)
	transfers := make([]Transfer, 0, len(raws))
	for _, raw := range raws {
		if raw.InMsg != nil {
			native, rule := IsNativeTransfer(*raw.InMsg)
			if !native {
				c.logs.Debugw("skipping non-native transfer",
					"hash", raw.TransactionID.Hash,
					"rule", rule)
				continue
			}
		}

		transfer, ok := Normalize(raw, accountID)
		if !ok {
			c.logs.Debugw("skipping non-actionable transaction", "hash", raw.TransactionID.Hash)
			continue
		}

		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

// GetAccountInfo fetches the account's balance/state snapshot.
func (c *Client) GetAccountInfo(ctx context.Context, accountID string) (AccountInfo, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchAccountInfo(ctx, accountID)
	})
	if err != nil {
		return AccountInfo{}, err
	}

	return result.(AccountInfo), nil
}

func (c *Client) fetchTransactions(ctx context.Context, accountID string, limit int) ([]RawTransaction, error) {
	params := url.Values{}
	params.Set("address", accountID)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("to_lt", "0")
	params.Set("archival", "true")

	var response transactionsResponse
	if err := c.getJSON(ctx, "/getTransactions", params, &response); err != nil {
		return nil, err
	}

	if !response.OK {
		return nil, fmt.Errorf("indexer error: %s", response.Error)
	}

	return response.Result, nil
}

func (c *Client) fetchAccountInfo(ctx context.Context, accountID string) (AccountInfo, error) {
	params := url.Values{}
	params.Set("address", accountID)

	var response accountInfoResponse
	if err := c.getJSON(ctx, "/getAddressInformation", params, &response); err != nil {
		return AccountInfo{}, err
	}

	if !response.OK {
		return AccountInfo{}, fmt.Errorf("indexer error: %s", response.Error)
	}

	return response.Result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("indexer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("indexer responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode indexer response: %w", err)
	}

	return nil
}
