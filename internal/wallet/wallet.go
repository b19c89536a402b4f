// Package wallet is the thin glue between the runner and an external wallet
// capability: balance display, transfer planning and submission.
//
// No cryptography happens here. Connecting, signing and submitting are
// delegated to a Wallet implementation supplied by the platform.
package wallet

import (
	"context"
	"errors"
	"strings"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

var (
	// ErrNoProvider means no wallet capability is available.
	ErrNoProvider = errors.New("wallet: no wallet provider found")
	// ErrNotConnected means an operation needs a connected identity.
	ErrNotConnected = errors.New("wallet: not connected")
	// ErrRejected means the user declined to sign.
	ErrRejected = errors.New("wallet: transaction cancelled")
	// ErrInvalidAmount means the entered amount is not a positive number.
	ErrInvalidAmount = errors.New("wallet: invalid amount")
	// ErrAmountTooSmall means the amount does not cover the fee reserve.
	ErrAmountTooSmall = errors.New("wallet: amount too small for the transaction fee")
)

// Transfer is a planned SOL transfer.
type Transfer struct {
	From                 string
	Destination          string
	Lamports             uint64
	Blockhash            string
	LastValidBlockHeight uint64
}

// Wallet is the external wallet capability. Every call may fail.
type Wallet interface {
	Connect(ctx context.Context) (string, error)
	Disconnect(ctx context.Context) error
	Balance(ctx context.Context, identity string) (float64, error)
	SignMessage(ctx context.Context, msg []byte) ([]byte, error)
	SubmitTransfer(ctx context.Context, t Transfer) (string, error)
}

// BalanceSource reports the SOL balance of an identity.
type BalanceSource interface {
	Balance(ctx context.Context, identity string) (float64, error)
}

// Blockhash is a recent blockhash for transaction construction.
type Blockhash struct {
	Hash                 string
	LastValidBlockHeight uint64
}

// BlockhashSource supplies recent blockhashes.
type BlockhashSource interface {
	LatestBlockhash(ctx context.Context) (Blockhash, error)
}

// Message returns the short user-facing text for a wallet error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRejected):
		return "Transaction cancelled."
	case errors.Is(err, ErrNoProvider):
		return "No wallet provider found"
	case errors.Is(err, ErrNotConnected):
		return "Connect a wallet first"
	case errors.Is(err, ErrAmountTooSmall):
		return "Amount too small, not enough for the transaction fee."
	case errors.Is(err, ErrInvalidAmount):
		return "Enter a positive SOL amount"
	default:
		return strings.TrimPrefix(err.Error(), "wallet: ")
	}
}

// Truncate shortens an address to its first and last chars characters.
// Short addresses are returned unchanged.
func Truncate(address string, chars int) string {
	if len(address) <= chars*2+3 {
		return address
	}
	return address[:chars] + "..." + address[len(address)-chars:]
}

// SolscanTokenURL returns the Solscan page of a token mint.
func SolscanTokenURL(mint string) string {
	return "https://solscan.io/token/" + mint
}

// DexscreenerURL returns the Dexscreener chart of a Solana token mint.
func DexscreenerURL(mint string) string {
	return "https://dexscreener.com/solana/" + mint
}
