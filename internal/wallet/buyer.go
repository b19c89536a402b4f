package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Receipt describes a submitted transfer. Submission is not finalization.
type Receipt struct {
	Signature string
	Transfer  Transfer
}

// Buyer sends SOL to a fixed treasury through a Wallet.
type Buyer struct {
	wallet     Wallet
	blockhash  BlockhashSource
	treasury   string
	feeReserve uint64
	log        *log.Logger
}

// BuyerOption configures a Buyer.
type BuyerOption func(*Buyer)

// WithBlockhashSource makes the buyer attach a recent blockhash to every
// transfer before submission.
func WithBlockhashSource(src BlockhashSource) BuyerOption {
	return func(b *Buyer) { b.blockhash = src }
}

// WithBuyerLogger sets the buyer logger.
func WithBuyerLogger(l *log.Logger) BuyerOption {
	return func(b *Buyer) { b.log = l }
}

// NewBuyer creates a buyer that sends to treasury.
func NewBuyer(w Wallet, treasury string, feeReserve uint64, opts ...BuyerOption) *Buyer {
	b := &Buyer{
		wallet:     w,
		treasury:   treasury,
		feeReserve: feeReserve,
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Buy validates sol, plans the transfer from identity and submits it once.
// Invalid amounts are rejected before the wallet is contacted, and the
// wallet is reached before any blockhash is fetched.
func (b *Buyer) Buy(ctx context.Context, identity string, sol float64) (Receipt, error) {
	if identity == "" {
		return Receipt{}, ErrNotConnected
	}
	t, err := PlanTransfer(identity, b.treasury, sol, b.feeReserve)
	if err != nil {
		return Receipt{}, err
	}

	// Reach the provider before any network call.
	if _, err := b.wallet.Connect(ctx); err != nil {
		if isRejection(err) {
			return Receipt{}, ErrRejected
		}
		return Receipt{}, err
	}

	if b.blockhash != nil {
		bh, err := b.blockhash.LatestBlockhash(ctx)
		if err != nil {
			return Receipt{}, fmt.Errorf("wallet: blockhash: %w", err)
		}
		t.Blockhash = bh.Hash
		t.LastValidBlockHeight = bh.LastValidBlockHeight
	}

	sig, err := b.wallet.SubmitTransfer(ctx, t)
	if err != nil {
		if isRejection(err) {
			b.log.Info("transfer cancelled by user", "lamports", t.Lamports)
			return Receipt{}, ErrRejected
		}
		b.log.Warn("transfer failed", "lamports", t.Lamports, "err", err)
		return Receipt{}, err
	}

	b.log.Info("transfer submitted", "signature", sig, "lamports", t.Lamports, "to", t.Destination)
	return Receipt{Signature: sig, Transfer: t}, nil
}

// isRejection recognizes user-declined signing across wallet providers.
func isRejection(err error) bool {
	if errors.Is(err, ErrRejected) {
		return true
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) && coded.Code() == 4001 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "rejected")
}
