package storage

import "strings"

// TokenMintKey holds the displayed token address override.
const TokenMintKey = "grq_token_mint"

// TokenMint returns the stored mint override, or fallback when none is set
// or the store cannot be read.
func (l *Leaderboard) TokenMint(fallback string) string {
	raw, ok, err := l.kv.Get(TokenMintKey)
	if err != nil {
		l.log.Warn("token mint read failed", "err", err)
		return fallback
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	return raw
}

// SetTokenMint stores a trimmed mint override. A blank mint removes it.
func (l *Leaderboard) SetTokenMint(mint string) {
	mint = strings.TrimSpace(mint)
	var err error
	if mint == "" {
		err = l.kv.Remove(TokenMintKey)
	} else {
		err = l.kv.Set(TokenMintKey, mint)
	}
	if err != nil {
		l.log.Warn("token mint write failed", "err", err)
	}
}
