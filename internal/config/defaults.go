package config

import (
	_ "embed"
)

// Variant identifiers.
const (
	VariantRugRun       = "rugrun"
	VariantGetRichQuick = "getrichquick"
)

//go:embed defaults/rugrun.yaml
var defaultRugRunYAML []byte

//go:embed defaults/getrichquick.yaml
var defaultGetRichQuickYAML []byte

// embeddedYAML returns the embedded default document for a variant.
func embeddedYAML(variant string) []byte {
	switch variant {
	case VariantGetRichQuick:
		return defaultGetRichQuickYAML
	default:
		return defaultRugRunYAML
	}
}

// Default returns the hardcoded configuration of a variant.
// Unknown variants get the RugRun defaults.
func Default(variant string) RunnerConfig {
	cfg := baseConfig()
	switch variant {
	case VariantGetRichQuick:
		cfg.Variant = VariantInfo{
			ID:        VariantGetRichQuick,
			Title:     "GetRichQuick",
			Tagline:   "Stack money. Dodge scams. No regrets.",
			StartHint: "Press SPACE to start stacking",
			OverTitle: "SCAMMED!",
			OverLine:  "A scam got your bag. But real ones get back up.",
			Ticker:    "GRQ",
		}
		cfg.Pickups.Labels = []string{"CASH", "MONEY", "BAG", "STACK", "PROFIT"}
	default:
		cfg.Variant = VariantInfo{
			ID:        VariantRugRun,
			Title:     "RugRun",
			Tagline:   "Dodge the rugs. Stack the bags.",
			StartHint: "Press SPACE to start running",
			OverTitle: "RUGGED!",
			OverLine:  "A rug got your bag. But real ones get back up.",
			Ticker:    "RUG",
		}
		cfg.Pickups.Labels = []string{"BAG", "SAFU", "GEM", "MOON", "LAMBO"}
	}
	return cfg
}

func baseConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  360,
			GroundY: 312,
		},
		Physics: PhysicsConfig{
			Gravity:     0.7,
			JumpImpulse: -13.5,
			BaseSpeed:   4,
		},
		Player: PlayerConfig{
			X:      60,
			Width:  30,
			Height: 44,
		},
		Obstacles: ObstacleConfig{
			SpawnOffset: 20,
			MinWidth:    28,
			WidthRange:  18,
			MinHeight:   25,
			HeightRange: 35,
			HitMargin:   5,
			PruneX:      -10,
			ClearLineX:  55,
			Categories: []string{
				"HONEYPOT", "FAKE LP", "DEV DUMP", "RUG PULL", "EXIT SCAM", "PUMP&DUMP",
			},
		},
		Pickups: PickupConfig{
			Every:         80,
			Gate:          0.35,
			MinLift:       65,
			LiftRange:     85,
			Size:          12,
			Reach:         8,
			PruneX:        -20,
			Denominations: []int64{25, 50, 100, 200, 500},
		},
		Scoring: ScoringConfig{
			TickEvery:   5,
			TickPoints:  1,
			TickCents:   1,
			PickupBonus: 15,
		},
		Pacing: PacingConfig{
			SpeedStepEvery:     400,
			SpeedStep:          0.5,
			CadenceStart:       75,
			CadenceShrink:      5,
			CadenceShrinkEvery: 250,
			CadenceFloor:       35,
		},
		Wallet: WalletConfig{
			Treasury:           "AwPS9jNY6PRPcX6W3Z1djxyTsdrpkpCeDbsC93cZ8KHM",
			DefaultMint:        "BxThE9mZyYCgHuaCSKw5Az4pUzhspUcG8fiYr4AWpump",
			RPCEndpoint:        "https://rpc.ankr.com/solana",
			FeeReserveLamports: 10_000,
			PollSeconds:        10,
			PresetAmounts:      []float64{0.1, 0.5, 1, 5},
			PercentButtons:     []int{30, 50, 100},
		},
		Links: LinksConfig{
			Community: "https://x.com/i/communities/2021322872828878918",
			X:         "https://x.com/RugRun",
			Telegram:  "https://t.me/RugRun",
		},
	}
}
