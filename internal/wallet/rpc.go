package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// DefaultRPCEndpoint is the public RPC used when none is configured.
const DefaultRPCEndpoint = "https://rpc.ankr.com/solana"

// RPC is a minimal JSON-RPC client for public balance and blockhash reads.
// Requests are rate limited client-side to stay polite with public endpoints.
type RPC struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	nextID   atomic.Int64
}

// RPCOption configures an RPC client.
type RPCOption func(*RPC)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) RPCOption {
	return func(r *RPC) { r.client = c }
}

// WithRateLimit sets the sustained request rate and burst.
func WithRateLimit(perSecond float64, burst int) RPCOption {
	return func(r *RPC) { r.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewRPC creates a client for endpoint. An empty endpoint uses
// DefaultRPCEndpoint.
func NewRPC(endpoint string, opts ...RPCOption) *RPC {
	if endpoint == "" {
		endpoint = DefaultRPCEndpoint
	}
	r := &RPC{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(2), 4),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Endpoint returns the RPC URL.
func (r *RPC) Endpoint() string {
	return r.endpoint
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// call performs one request and returns its result member.
func (r *RPC) call(ctx context.Context, method string, params ...any) (gjson.Result, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: %w", method, err)
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      r.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: encode: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: read: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: http %d", method, resp.StatusCode)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: malformed response", method)
	}

	doc := gjson.ParseBytes(data)
	if e := doc.Get("error"); e.Exists() {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: %s (code %d)", method, e.Get("message").String(), e.Get("code").Int())
	}
	result := doc.Get("result")
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("wallet: rpc %s: missing result", method)
	}
	return result, nil
}

// unwrap returns result.value when present, otherwise result itself.
// Providers disagree on whether context-wrapped results are used.
func unwrap(result gjson.Result) gjson.Result {
	if v := result.Get("value"); v.Exists() {
		return v
	}
	return result
}

// Balance returns the SOL balance of identity.
func (r *RPC) Balance(ctx context.Context, identity string) (float64, error) {
	result, err := r.call(ctx, "getBalance", identity, map[string]string{"commitment": "confirmed"})
	if err != nil {
		return 0, err
	}
	v := unwrap(result)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("wallet: rpc getBalance: unexpected result %s", result.Raw)
	}
	return float64(v.Uint()) / LamportsPerSOL, nil
}

// LatestBlockhash returns a recent blockhash.
func (r *RPC) LatestBlockhash(ctx context.Context) (Blockhash, error) {
	result, err := r.call(ctx, "getLatestBlockhash", map[string]string{"commitment": "confirmed"})
	if err != nil {
		return Blockhash{}, err
	}
	v := unwrap(result)
	hash := v.Get("blockhash").String()
	if hash == "" {
		return Blockhash{}, fmt.Errorf("wallet: rpc getLatestBlockhash: unexpected result %s", result.Raw)
	}
	return Blockhash{
		Hash:                 hash,
		LastValidBlockHeight: v.Get("lastValidBlockHeight").Uint(),
	}, nil
}
