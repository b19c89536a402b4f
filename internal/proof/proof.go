// Package proof builds copyable summaries of finished runs.
//
// A RunProof is not tamper-proof. It carries a random nonce and a timestamp so
// that two runs with the same score stay distinguishable, and it can be
// wrapped with a signature from an external signer. Nothing here verifies
// signatures.
package proof

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// ErrNoSigner is returned by Sign when no signer is available.
var ErrNoSigner = errors.New("proof: no signer available")

// Summary is the frozen result of a run. Nil optional fields are omitted
// from the proof.
type Summary struct {
	Score            int
	Currency         *float64
	ObstaclesCleared *int
}

// RunProof is the user-facing record of a finished run.
type RunProof struct {
	Identity              string   `json:"identity"`
	Score                 int      `json:"score"`
	CurrencyAccrued       *float64 `json:"currencyAccrued,omitempty"`
	ObstaclesCleared      *int     `json:"obstaclesCleared,omitempty"`
	RecordedAtEpochMillis int64    `json:"recordedAtEpochMillis"`
	Nonce                 string   `json:"nonce"`
}

// JSON returns the compact JSON form of the proof.
func (p RunProof) JSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("proof: encode: %w", err)
	}
	return string(data), nil
}

// SignedProof wraps a proof with an external signature.
type SignedProof struct {
	Proof     RunProof `json:"proof"`
	Signature string   `json:"signature"` // base64
}

// JSON returns the compact JSON form of the signed proof.
func (s SignedProof) JSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("proof: encode: %w", err)
	}
	return string(data), nil
}

// Signer signs arbitrary bytes, typically a connected wallet.
type Signer interface {
	SignMessage(ctx context.Context, msg []byte) ([]byte, error)
}

// Builder creates proofs stamped with its clock.
type Builder struct {
	clock   clock.Clock
	newUUID func() string
}

// NewBuilder creates a builder. A nil clock uses the wall clock.
func NewBuilder(c clock.Clock) *Builder {
	if c == nil {
		c = clock.New()
	}
	return &Builder{
		clock:   c,
		newUUID: func() string { return uuid.NewString() },
	}
}

// Build creates a proof for identity with a fresh nonce.
func (b *Builder) Build(identity string, s Summary) RunProof {
	return RunProof{
		Identity:              identity,
		Score:                 s.Score,
		CurrencyAccrued:       s.Currency,
		ObstaclesCleared:      s.ObstaclesCleared,
		RecordedAtEpochMillis: b.clock.Now().UnixMilli(),
		Nonce:                 b.newUUID(),
	}
}

// Sign signs the proof's JSON bytes and wraps the result. The unsigned proof
// is left untouched.
func Sign(ctx context.Context, signer Signer, p RunProof) (SignedProof, error) {
	if signer == nil {
		return SignedProof{}, ErrNoSigner
	}
	msg, err := json.Marshal(p)
	if err != nil {
		return SignedProof{}, fmt.Errorf("proof: encode: %w", err)
	}
	sig, err := signer.SignMessage(ctx, msg)
	if err != nil {
		return SignedProof{}, fmt.Errorf("proof: sign: %w", err)
	}
	return SignedProof{
		Proof:     p,
		Signature: base64.StdEncoding.EncodeToString(sig),
	}, nil
}
