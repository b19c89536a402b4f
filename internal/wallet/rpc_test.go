package wallet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// rpcServer answers JSON-RPC calls from a method -> response body table.
func rpcServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		method := gjson.GetBytes(body, "method").String()
		resp, ok := responses[method]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRPCBalanceContextWrapped(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"getBalance": `{"jsonrpc":"2.0","id":1,"result":{"context":{"slot":1},"value":1500000000}}`,
	})

	bal, err := NewRPC(srv.URL).Balance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1.5, bal)
}

func TestRPCBalanceBareResult(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"getBalance": `{"jsonrpc":"2.0","id":1,"result":250000000}`,
	})

	bal, err := NewRPC(srv.URL).Balance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 0.25, bal)
}

func TestRPCErrors(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"getBalance":         `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid param"}}`,
		"getLatestBlockhash": `{"jsonrpc":"2.0","id":1,"result":{"value":{}}}`,
	})
	c := NewRPC(srv.URL)

	_, err := c.Balance(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid param")

	_, err = c.LatestBlockhash(context.Background())
	assert.Error(t, err)

	unknown := rpcServer(t, map[string]string{})
	_, err = NewRPC(unknown.URL).Balance(context.Background(), "alice")
	assert.Error(t, err)
}

func TestRPCLatestBlockhash(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"getLatestBlockhash": `{"jsonrpc":"2.0","id":1,"result":{"context":{"slot":5},"value":{"blockhash":"EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N","lastValidBlockHeight":3090}}}`,
	})

	bh, err := NewRPC(srv.URL).LatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N", bh.Hash)
	assert.Equal(t, uint64(3090), bh.LastValidBlockHeight)
}

func TestRPCCancelledContext(t *testing.T) {
	srv := rpcServer(t, map[string]string{"getBalance": `{"result":1}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRPC(srv.URL, WithRateLimit(1, 1)).Balance(ctx, "alice")
	assert.Error(t, err)
}

func TestNewRPCDefaultEndpoint(t *testing.T) {
	assert.Equal(t, DefaultRPCEndpoint, NewRPC("").Endpoint())
}
