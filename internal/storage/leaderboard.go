package storage

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
)

// Storage keys. They are shared by every variant on the device.
const (
	LeaderboardKey   = "rugrun_leaderboard"
	BestScorePrefix  = "rugrun_best_"
	MaxLeaderboard   = 50
	DefaultTopScores = 10
)

// ScoreEntry is one finished run on the leaderboard.
type ScoreEntry struct {
	Identity   string    `json:"wallet"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"date"`
}

// Stats summarizes the persisted leaderboard.
type Stats struct {
	Entries    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Leaderboard stores scores and best scores in a KV backend.
// Every operation is best-effort: read failures degrade to empty results and
// write failures are logged and dropped.
//
// A Leaderboard is safe for concurrent use; read-modify-write updates are
// serialized so concurrent sessions sharing one board do not drop entries.
type Leaderboard struct {
	kv    KV
	clock clock.Clock
	log   *log.Logger

	mu sync.Mutex
}

// LeaderboardOption configures a Leaderboard.
type LeaderboardOption func(*Leaderboard)

// WithClock sets the clock used to timestamp entries.
func WithClock(c clock.Clock) LeaderboardOption {
	return func(l *Leaderboard) { l.clock = c }
}

// WithLogger sets the logger that receives swallowed failures.
func WithLogger(logger *log.Logger) LeaderboardOption {
	return func(l *Leaderboard) { l.log = logger }
}

// NewLeaderboard creates a leaderboard over kv.
func NewLeaderboard(kv KV, opts ...LeaderboardOption) *Leaderboard {
	l := &Leaderboard{
		kv:    kv,
		clock: clock.New(),
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// entries reads the persisted list. Missing or malformed content is empty.
func (l *Leaderboard) entries() []ScoreEntry {
	raw, ok, err := l.kv.Get(LeaderboardKey)
	if err != nil {
		l.log.Warn("leaderboard read failed", "err", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var list []ScoreEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		l.log.Warn("leaderboard is corrupt, treating as empty", "err", err)
		return nil
	}
	return list
}

// AppendScore records a finished run and keeps the top MaxLeaderboard
// entries, highest first. Equal scores keep their insertion order.
func (l *Leaderboard) AppendScore(identity string, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := append(l.entries(), ScoreEntry{
		Identity:   identity,
		Score:      score,
		RecordedAt: l.clock.Now().UTC(),
	})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	if len(list) > MaxLeaderboard {
		list = list[:MaxLeaderboard]
	}

	data, err := json.Marshal(list)
	if err != nil {
		l.log.Warn("leaderboard encode failed", "err", err)
		return
	}
	if err := l.kv.Set(LeaderboardKey, string(data)); err != nil {
		l.log.Warn("leaderboard write failed", "identity", identity, "score", score, "err", err)
	}
}

// TopScores returns the first limit entries, highest first.
// A non-positive limit returns nothing.
func (l *Leaderboard) TopScores(limit int) []ScoreEntry {
	if limit <= 0 {
		return nil
	}
	list := l.entries()
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// ResetLeaderboard deletes the stored list.
func (l *Leaderboard) ResetLeaderboard() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Remove(LeaderboardKey); err != nil {
		l.log.Warn("leaderboard reset failed", "err", err)
	}
}

// BestScore returns the stored best score of identity, or 0.
func (l *Leaderboard) BestScore(identity string) int {
	raw, ok, err := l.kv.Get(BestScorePrefix + identity)
	if err != nil {
		l.log.Warn("best score read failed", "identity", identity, "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// RecordBestScore stores score only if it beats the current best.
func (l *Leaderboard) RecordBestScore(identity string, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if score <= l.BestScore(identity) {
		return
	}
	if err := l.kv.Set(BestScorePrefix+identity, strconv.Itoa(score)); err != nil {
		l.log.Warn("best score write failed", "identity", identity, "score", score, "err", err)
	}
}

// BestScores returns the best score of every identity the backend knows.
// Backends that cannot list keys yield an empty map.
func (l *Leaderboard) BestScores() map[string]int {
	out := make(map[string]int)
	lister, ok := l.kv.(KeyLister)
	if !ok {
		return out
	}
	keys, err := lister.Keys(BestScorePrefix)
	if err != nil {
		l.log.Warn("best score listing failed", "err", err)
		return out
	}
	for _, k := range keys {
		identity := strings.TrimPrefix(k, BestScorePrefix)
		out[identity] = l.BestScore(identity)
	}
	return out
}

// Stats aggregates the persisted leaderboard.
func (l *Leaderboard) Stats() Stats {
	var s Stats
	for _, e := range l.entries() {
		s.Entries++
		s.TotalScore += int64(e.Score)
		if e.Score > s.HighScore {
			s.HighScore = e.Score
		}
		if e.RecordedAt.After(s.LastPlayed) {
			s.LastPlayed = e.RecordedAt
		}
	}
	if s.Entries > 0 {
		s.AvgScore = float64(s.TotalScore) / float64(s.Entries)
	}
	return s
}
