package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWallet struct {
	Unavailable
	connects   int
	connectErr error
	submitted  []Transfer
	sig        string
	err        error
}

func (f *fakeWallet) Connect(context.Context) (string, error) {
	f.connects++
	if f.connectErr != nil {
		return "", f.connectErr
	}
	return "me", nil
}

func (f *fakeWallet) SubmitTransfer(_ context.Context, t Transfer) (string, error) {
	f.submitted = append(f.submitted, t)
	return f.sig, f.err
}

type fakeBlockhash struct {
	calls int
	err   error
}

func (f *fakeBlockhash) LatestBlockhash(context.Context) (Blockhash, error) {
	f.calls++
	return Blockhash{Hash: "hash1", LastValidBlockHeight: 77}, f.err
}

type codedErr struct{ code int }

func (c codedErr) Error() string { return "provider error" }
func (c codedErr) Code() int     { return c.code }

func TestBuySubmitsOnce(t *testing.T) {
	w := &fakeWallet{sig: "sig1"}
	bh := &fakeBlockhash{}
	b := NewBuyer(w, "treasury", 10_000, WithBlockhashSource(bh))

	r, err := b.Buy(context.Background(), "me", 1)
	require.NoError(t, err)

	assert.Equal(t, "sig1", r.Signature)
	require.Len(t, w.submitted, 1)
	assert.Equal(t, uint64(LamportsPerSOL-10_000), w.submitted[0].Lamports)
	assert.Equal(t, "treasury", w.submitted[0].Destination)
	assert.Equal(t, "hash1", w.submitted[0].Blockhash)
	assert.Equal(t, uint64(77), w.submitted[0].LastValidBlockHeight)
	assert.Equal(t, 1, bh.calls)
}

func TestBuyRejectsBadAmountsWithoutContact(t *testing.T) {
	w := &fakeWallet{}
	bh := &fakeBlockhash{}
	b := NewBuyer(w, "treasury", 10_000, WithBlockhashSource(bh))

	_, err := b.Buy(context.Background(), "me", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = b.Buy(context.Background(), "me", -3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = b.Buy(context.Background(), "me", 0.000005)
	assert.ErrorIs(t, err, ErrAmountTooSmall)

	_, err = b.Buy(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrNotConnected)

	assert.Empty(t, w.submitted)
	assert.Zero(t, w.connects)
	assert.Zero(t, bh.calls)
}

func TestBuyMapsRejections(t *testing.T) {
	for name, submitErr := range map[string]error{
		"message": errors.New("User rejected the request."),
		"code":    codedErr{code: 4001},
		"wrapped": ErrRejected,
	} {
		t.Run(name, func(t *testing.T) {
			b := NewBuyer(&fakeWallet{err: submitErr}, "treasury", 10_000)
			_, err := b.Buy(context.Background(), "me", 1)
			assert.ErrorIs(t, err, ErrRejected)
			assert.Equal(t, "Transaction cancelled.", Message(err))
		})
	}
}

func TestBuySurfacesOtherFailures(t *testing.T) {
	boom := errors.New("node is behind")
	w := &fakeWallet{err: boom}
	b := NewBuyer(w, "treasury", 10_000)

	_, err := b.Buy(context.Background(), "me", 1)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, w.submitted, 1, "no automatic retries")

	bh := &fakeBlockhash{err: errors.New("timeout")}
	b = NewBuyer(&fakeWallet{}, "treasury", 10_000, WithBlockhashSource(bh))
	_, err = b.Buy(context.Background(), "me", 1)
	assert.Error(t, err)
}

func TestUnavailableWallet(t *testing.T) {
	var w Wallet = Unavailable{}
	ctx := context.Background()

	_, err := w.Connect(ctx)
	assert.ErrorIs(t, err, ErrNoProvider)
	_, err = w.Balance(ctx, "me")
	assert.ErrorIs(t, err, ErrNoProvider)
	_, err = w.SignMessage(ctx, []byte("x"))
	assert.ErrorIs(t, err, ErrNoProvider)

	bh := &fakeBlockhash{}
	b := NewBuyer(w, "treasury", 10_000, WithBlockhashSource(bh))
	_, err = b.Buy(ctx, "me", 1)
	assert.ErrorIs(t, err, ErrNoProvider)
	assert.Zero(t, bh.calls, "no blockhash fetched without a provider")
}

func TestBuyStopsWhenConnectFails(t *testing.T) {
	bh := &fakeBlockhash{}
	w := &fakeWallet{connectErr: errors.New("User rejected the request.")}
	b := NewBuyer(w, "treasury", 10_000, WithBlockhashSource(bh))

	_, err := b.Buy(context.Background(), "me", 1)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, 1, w.connects)
	assert.Zero(t, bh.calls)
	assert.Empty(t, w.submitted)
}
