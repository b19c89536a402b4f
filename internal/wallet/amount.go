package wallet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a user-entered SOL amount. Anything that is not a
// finite positive number is rejected.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !validSOL(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// PercentOf returns pct percent of balance.
func PercentOf(balance float64, pct int) (float64, error) {
	if pct <= 0 || pct > 100 || !validSOL(balance) {
		return 0, fmt.Errorf("%w: %d%% of %v", ErrInvalidAmount, pct, balance)
	}
	return balance * float64(pct) / 100, nil
}

// PlanTransfer converts sol to lamports and subtracts the fee reserve.
func PlanTransfer(from, destination string, sol float64, feeReserve uint64) (Transfer, error) {
	if !validSOL(sol) {
		return Transfer{}, fmt.Errorf("%w: %v", ErrInvalidAmount, sol)
	}
	lamports := math.Floor(sol*LamportsPerSOL) - float64(feeReserve)
	if lamports <= 0 {
		return Transfer{}, ErrAmountTooSmall
	}
	return Transfer{
		From:        from,
		Destination: destination,
		Lamports:    uint64(lamports),
	}, nil
}

// FormatSOL formats lamports as SOL with four decimals.
func FormatSOL(lamports uint64) string {
	return strconv.FormatFloat(float64(lamports)/LamportsPerSOL, 'f', 4, 64)
}

func validSOL(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
