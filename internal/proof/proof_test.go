package proof

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSigner struct {
	got []byte
	sig []byte
	err error
}

func (f *fakeSigner) SignMessage(_ context.Context, msg []byte) ([]byte, error) {
	f.got = msg
	return f.sig, f.err
}

func ptr[T any](v T) *T { return &v }

func TestBuildStampsClockAndNonce(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.UnixMilli(1_700_000_000_123))
	b := NewBuilder(mock)

	p := b.Build("guest", Summary{Score: 42})

	assert.Equal(t, "guest", p.Identity)
	assert.Equal(t, 42, p.Score)
	assert.Equal(t, int64(1_700_000_000_123), p.RecordedAtEpochMillis)
	_, err := uuid.Parse(p.Nonce)
	assert.NoError(t, err, "nonce should be a UUID")
}

func TestIdenticalSummariesGetDistinctNonces(t *testing.T) {
	b := NewBuilder(clock.NewMock())
	s := Summary{Score: 7, Currency: ptr(0.42), ObstaclesCleared: ptr(3)}

	first := b.Build("guest", s)
	second := b.Build("guest", s)

	assert.NotEqual(t, first.Nonce, second.Nonce)
	assert.Equal(t, first.RecordedAtEpochMillis, second.RecordedAtEpochMillis)
}

func TestJSONOmitsAbsentFields(t *testing.T) {
	b := NewBuilder(clock.NewMock())
	b.newUUID = func() string { return "n-1" }

	out, err := b.Build("guest", Summary{Score: 3}).JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"identity":"guest","score":3,"recordedAtEpochMillis":0,"nonce":"n-1"}`, out)

	out, err = b.Build("guest", Summary{Score: 3, Currency: ptr(1.25), ObstaclesCleared: ptr(0)}).JSON()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"identity":"guest","score":3,"currencyAccrued":1.25,"obstaclesCleared":0,"recordedAtEpochMillis":0,"nonce":"n-1"}`,
		out)
}

func TestSignWrapsProof(t *testing.T) {
	b := NewBuilder(clock.NewMock())
	p := b.Build("wallet1", Summary{Score: 99})
	signer := &fakeSigner{sig: []byte{0xde, 0xad, 0xbe, 0xef}}

	signed, err := Sign(context.Background(), signer, p)
	require.NoError(t, err)

	assert.Equal(t, p, signed.Proof, "unsigned proof must be unchanged")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xde, 0xad, 0xbe, 0xef}), signed.Signature)

	var signedOver RunProof
	require.NoError(t, json.Unmarshal(signer.got, &signedOver))
	assert.Equal(t, p, signedOver, "signer should receive the proof JSON")

	out, err := signed.JSON()
	require.NoError(t, err)
	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &shape))
	assert.Contains(t, shape, "proof")
	assert.Contains(t, shape, "signature")
}

func TestSignErrors(t *testing.T) {
	p := NewBuilder(nil).Build("guest", Summary{})

	_, err := Sign(context.Background(), nil, p)
	assert.ErrorIs(t, err, ErrNoSigner)

	rejected := errors.New("user rejected")
	_, err = Sign(context.Background(), &fakeSigner{err: rejected}, p)
	assert.ErrorIs(t, err, rejected)
}
