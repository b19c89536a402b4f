package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/wallet"
)

var (
	flagWatch  bool
	flagDryRun bool
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the SOL balance of a wallet",
	Long: `Fetch a SOL balance over JSON-RPC. The address defaults to --identity.
Set RUGRUN_SOLANA_RPC (or put it in .env) to use another endpoint.

Examples:
  rugrun balance AwPS9jNY6PRPcX6W3Z1djxyTsdrpkpCeDbsC93cZ8KHM
  rugrun balance --identity <address> --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBalance,
}

var buyCmd = &cobra.Command{
	Use:   "buy [amount|percent%]",
	Short: "Send SOL to the treasury",
	Long: `Send SOL from --identity to the variant's treasury. A small fee reserve
is kept back from the amount. The amount is either SOL ("0.5") or a share of
the current balance ("50%"). Without an argument the preset amounts are
listed.

Signing needs a wallet provider; the terminal build has none, so the
transfer is planned and validated but cannot be submitted.

Examples:
  rugrun buy
  rugrun buy 0.5 --identity <address> --dry-run
  rugrun buy 30% --identity <address> --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBuy,
}

func init() {
	balanceCmd.Flags().BoolVar(&flagWatch, "watch", false, "Keep polling until interrupted")
	buyCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Only show the planned transfer")
	buyCmd.Flags().BoolVar(&flagWatch, "watch", false, "Keep showing the balance after the transfer")
}

// interruptContext is cancelled on Ctrl+C or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// connectedIdentity returns the address to use, or exits when there is none.
func connectedIdentity(args []string) string {
	identity := flagIdentity
	if len(args) > 0 {
		identity = args[0]
	}
	if identity == "" || identity == core.GuestIdentity {
		fmt.Fprintf(os.Stderr, "Error: %s (pass an address or --identity)\n", wallet.Message(wallet.ErrNotConnected))
		os.Exit(1)
	}
	return identity
}

func runBalance(cmd *cobra.Command, args []string) {
	identity := connectedIdentity(args)
	logger := newLogger()
	cfg := loadVariant()
	rpc := wallet.NewRPC(cfg.Wallet.RPCEndpoint)

	ctx, cancel := interruptContext()
	defer cancel()

	if !flagWatch {
		sol, err := rpc.Balance(ctx, identity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", wallet.Message(err))
			os.Exit(1)
		}
		fmt.Printf("%s: %.4f SOL\n", wallet.Truncate(identity, 5), sol)
		return
	}

	poller := newBalancePoller(rpc, cfg.Wallet.PollSeconds, logger)
	fmt.Printf("Watching %s every %ds via %s (Ctrl+C to stop)\n", wallet.Truncate(identity, 5), cfg.Wallet.PollSeconds, rpc.Endpoint())
	poller.Watch(ctx, identity)
	<-ctx.Done()
	poller.Stop()
}

func runBuy(cmd *cobra.Command, args []string) {
	cfg := loadVariant()
	w := cfg.Wallet

	if len(args) == 0 {
		presets := make([]string, len(w.PresetAmounts))
		for i, a := range w.PresetAmounts {
			presets[i] = strconv.FormatFloat(a, 'f', -1, 64)
		}
		percents := make([]string, len(w.PercentButtons))
		for i, p := range w.PercentButtons {
			percents[i] = fmt.Sprintf("%d%%", p)
		}
		fmt.Printf("Buy $%s by sending SOL to %s\n", cfg.Variant.Ticker, w.Treasury)
		fmt.Println()
		fmt.Printf("  Presets:  %s SOL\n", strings.Join(presets, ", "))
		fmt.Printf("  Percent:  %s of your balance\n", strings.Join(percents, ", "))
		fmt.Println()
		fmt.Println("Run 'rugrun buy <amount> --identity <address>'.")
		return
	}

	identity := connectedIdentity(nil)
	logger := newLogger()
	rpc := wallet.NewRPC(w.RPCEndpoint)

	ctx, cancel := interruptContext()
	defer cancel()

	sol, err := resolveAmount(ctx, rpc, identity, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", wallet.Message(err))
		os.Exit(1)
	}

	plan, err := wallet.PlanTransfer(identity, w.Treasury, sol, w.FeeReserveLamports)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", wallet.Message(err))
		os.Exit(1)
	}
	fmt.Printf("Sending %s SOL (%d lamports) to %s\n", wallet.FormatSOL(plan.Lamports), plan.Lamports, wallet.Truncate(plan.Destination, 5))

	if flagDryRun {
		return
	}

	buyer := wallet.NewBuyer(wallet.Unavailable{}, w.Treasury, w.FeeReserveLamports,
		wallet.WithBlockhashSource(rpc),
		wallet.WithBuyerLogger(logger),
	)
	receipt, err := buyer.Buy(ctx, identity, sol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", wallet.Message(err))
		os.Exit(1)
	}
	fmt.Printf("Transaction submitted: %s\n", receipt.Signature)

	if !flagWatch {
		return
	}
	poller := newBalancePoller(rpc, w.PollSeconds, logger)
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", wallet.Truncate(identity, 5))
	followBalance(ctx, poller, identity)
	<-ctx.Done()
	poller.Stop()
}

// postBuyRefresh is when the balance is re-read after a submitted transfer.
const postBuyRefresh = 3 * time.Second

// newBalancePoller prints every reading as a timestamped line.
func newBalancePoller(src wallet.BalanceSource, pollSeconds int, logger *log.Logger, opts ...wallet.PollerOption) *wallet.Poller {
	opts = append([]wallet.PollerOption{
		wallet.WithPollInterval(time.Duration(pollSeconds) * time.Second),
		wallet.WithPollLogger(logger),
	}, opts...)
	return wallet.NewPoller(src, func(u wallet.BalanceUpdate) {
		stamp := u.At.Local().Format("15:04:05")
		if u.Err != nil {
			fmt.Printf("[%s] %s: balance unavailable (%s)\n", stamp, wallet.Truncate(u.Identity, 5), wallet.Message(u.Err))
			return
		}
		fmt.Printf("[%s] %s: %.4f SOL\n", stamp, wallet.Truncate(u.Identity, 5), u.SOL)
	}, opts...)
}

// followBalance watches identity and takes one extra reading shortly after
// a transfer so the new balance shows before the next interval.
func followBalance(ctx context.Context, p *wallet.Poller, identity string) {
	p.Watch(ctx, identity)
	p.RefreshAfter(postBuyRefresh)
}

// resolveAmount turns "0.5" or "50%" into a SOL amount.
func resolveAmount(ctx context.Context, src wallet.BalanceSource, identity, arg string) (float64, error) {
	pctText, isPct := strings.CutSuffix(strings.TrimSpace(arg), "%")
	if !isPct {
		return wallet.ParseAmount(arg)
	}

	pct, err := strconv.Atoi(pctText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", wallet.ErrInvalidAmount, arg)
	}
	balance, err := src.Balance(ctx, identity)
	if err != nil {
		return 0, err
	}
	return wallet.PercentOf(balance, pct)
}
