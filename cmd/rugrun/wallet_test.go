package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/tiniprime/RugRun/internal/wallet"
)

type fixedBalance float64

func (f fixedBalance) Balance(context.Context, string) (float64, error) { return float64(f), nil }

func TestResolveAmount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		arg     string
		want    float64
		wantErr error
	}{
		{"0.5", 0.5, nil},
		{"50%", 1, nil},
		{"100%", 2, nil},
		{"0", 0, wallet.ErrInvalidAmount},
		{"abc%", 0, wallet.ErrInvalidAmount},
		{"0%", 0, wallet.ErrInvalidAmount},
		{"150%", 0, wallet.ErrInvalidAmount},
	}

	for _, tc := range tests {
		got, err := resolveAmount(ctx, fixedBalance(2), "me", tc.arg)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("resolveAmount(%q) err = %v, expected %v", tc.arg, err, tc.wantErr)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("resolveAmount(%q) = %v, %v; expected %v", tc.arg, got, err, tc.want)
		}
	}
}

type countingBalance struct{ calls atomic.Int32 }

func (c *countingBalance) Balance(context.Context, string) (float64, error) {
	c.calls.Add(1)
	return 1, nil
}

func waitForCalls(t *testing.T, c *countingBalance, n int32) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for c.calls.Load() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d balance reads, got %d", n, c.calls.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestFollowBalanceRereadsAfterBuy(t *testing.T) {
	mock := clock.NewMock()
	src := &countingBalance{}
	p := newBalancePoller(src, 3600, quietLogger(), wallet.WithPollClock(mock))
	defer p.Stop()

	followBalance(context.Background(), p, "me")
	waitForCalls(t, src, 1)

	mock.Add(postBuyRefresh)
	waitForCalls(t, src, 2)
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf(:23234) = %q", got)
	}
	if got := portOf("0.0.0.0:2222"); got != "2222" {
		t.Errorf("portOf = %q", got)
	}
}
