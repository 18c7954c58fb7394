package tokenclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	maxRetryAfter = retryInterval * maxRetries

	idempotencyKeyHeader = "Idempotency-Key"
)

type executeRequest struct {
	Sender string         `json:"sender"`
	Msg    map[string]any `json:"msg"`
}

type mintMsg struct {
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

type transferFromMsg struct {
	Owner     string        `json:"owner"`
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

type transferMsg struct {
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

// Client talks to the token service over HTTP. 429 responses are retried,
// and so are transport errors on balance queries. An execute request that
// failed in transport is never resent: it may already have been applied.
// Any other non-2xx status is a rejection.
type Client struct {
	baseURL string
	client  clients.HTTPClientI
	wait    func(ctx context.Context, d time.Duration) error
}

func New(baseURL string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
		wait:    sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Dispatch sends the recorded instruction to the token service on behalf of
// its sender. The request carries an idempotency key derived from the record.
func (c *Client) Dispatch(ctx context.Context, record domain.InstructionRecord) error {
	instruction := record.Instruction
	msg, err := wireMsg(instruction)
	if err != nil {
		return err
	}
	body, err := json.Marshal(executeRequest{Sender: record.Sender, Msg: msg})
	if err != nil {
		return fmt.Errorf("failed to encode instruction: %w", err)
	}

	key := IdempotencyKey(record)
	headers := http.Header{}
	headers.Set(idempotencyKeyHeader, key)
	endpoint := c.baseURL + "/api/contracts/" + url.PathEscape(instruction.Contract) + "/execute"
	_, err = c.do(ctx, endpoint, false, func() (int, []byte, http.Header, error) {
		return c.client.Post(endpoint, headers.Clone(), body)
	})
	if err != nil {
		return err
	}
	zap.L().Info("instruction dispatched",
		zap.String("key", key),
		zap.String("contract", instruction.Contract),
		zap.String("kind", string(instruction.Kind)),
		zap.String("recipient", instruction.Recipient),
		zap.Stringer("amount", instruction.Amount),
	)
	return nil
}

// IdempotencyKey identifies one delivery of a recorded instruction.
func IdempotencyKey(record domain.InstructionRecord) string {
	return record.Sender + "/" + strconv.FormatInt(record.ID, 10)
}

func wireMsg(in domain.Instruction) (map[string]any, error) {
	switch in.Kind {
	case domain.InstructionMint:
		return map[string]any{"mint": mintMsg{Recipient: in.Recipient, Amount: in.Amount}}, nil
	case domain.InstructionTransferFrom:
		return map[string]any{"transfer_from": transferFromMsg{Owner: in.Owner, Recipient: in.Recipient, Amount: in.Amount}}, nil
	case domain.InstructionTransfer:
		return map[string]any{"transfer": transferMsg{Recipient: in.Recipient, Amount: in.Amount}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown instruction kind %q", domain.ErrInvalidMessage, in.Kind)
	}
}

// Balance asks the token service at token for the balance of address.
func (c *Client) Balance(ctx context.Context, token, address string) (domain.Amount, error) {
	endpoint := c.baseURL + "/api/contracts/" + url.PathEscape(token) + "/balance/" + url.PathEscape(address)
	body, err := c.do(ctx, endpoint, true, func() (int, []byte, http.Header, error) {
		return c.client.Get(endpoint, nil)
	})
	if err != nil {
		return domain.Amount{}, err
	}

	var resp domain.BalanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Amount{}, fmt.Errorf("failed to parse balance response: %w", err)
	}
	return resp.Balance, nil
}

func (c *Client) do(ctx context.Context, endpoint string, retryTransport bool, call func() (int, []byte, http.Header, error)) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		statusCode, respBody, respHeaders, err := call()
		if err != nil && !retryTransport {
			zap.L().Error("token service request outcome unknown", zap.String("url", endpoint), zap.Error(err))
			return nil, fmt.Errorf("token service request not confirmed: %w", err)
		}
		if err != nil {
			lastErr = err
			zap.L().Warn("token service unreachable", zap.String("url", endpoint), zap.Int("attempt", attempt), zap.Error(err))
			if attempt < maxRetries {
				if err := c.wait(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return nil, err
				}
			}
			continue
		}

		switch {
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("%w: rate limited", domain.ErrSettlementRejected)
			retryAfter := retryDelay(respHeaders, attempt)
			zap.L().Warn("rate limit detected, retrying",
				zap.String("url", endpoint),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			if attempt < maxRetries {
				if err := c.wait(ctx, retryAfter); err != nil {
					return nil, err
				}
			}
		case statusCode >= 200 && statusCode < 300:
			return respBody, nil
		default:
			zap.L().Error("token service rejected request", zap.String("url", endpoint), zap.Int("status", statusCode))
			return nil, fmt.Errorf("%w: token service responded %d: %s", domain.ErrSettlementRejected, statusCode, respBody)
		}
	}
	return nil, fmt.Errorf("token service request failed after %d attempts: %w", maxRetries, lastErr)
}

// retryDelay honors Retry-After up to maxRetryAfter: the wait happens while
// the ledger lock and its transaction are held.
func retryDelay(headers http.Header, attempt int) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			if time.Duration(seconds) > maxRetryAfter/time.Second {
				return maxRetryAfter
			}
			return time.Duration(seconds) * time.Second
		}
	}
	return retryInterval * time.Duration(attempt)
}
