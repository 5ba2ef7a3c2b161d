package i

import "context"

// ScoreEntry is one member of a scoreboard with its best recorded score.
type ScoreEntry struct {
	Member string
	Score  float64
}

// Scoreboard records best-so-far scores per member under a key and
// serves ranked readbacks.
type Scoreboard interface {
	// Record stores score for member under key if it improves on the
	// member's previously recorded score.
	Record(ctx context.Context, key string, score float64, member string) error

	// Tops returns up to n entries under key, best (lowest) score first.
	Tops(ctx context.Context, key string, n int64) ([]ScoreEntry, error)
}
