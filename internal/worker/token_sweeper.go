package worker

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// TokenSweeper periodically clears expired password-reset tokens from both
// account tables. Expiry is also enforced at redemption; the sweep keeps
// stale tokens from lingering in the database.
type TokenSweeper struct {
	pool     *pgxpool.Pool
	interval time.Duration
	log      zerolog.Logger
}

// NewTokenSweeper creates a new TokenSweeper.
func NewTokenSweeper(pool *pgxpool.Pool, interval time.Duration, log zerolog.Logger) *TokenSweeper {
	return &TokenSweeper{
		pool:     pool,
		interval: interval,
		log:      log.With().Str("component", "token_sweeper").Logger(),
	}
}

// Start begins the periodic sweep loop. Call in a goroutine.
func (w *TokenSweeper) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *TokenSweeper) sweep(ctx context.Context) {
	total := int64(0)
	for _, table := range []string{"teachers", "students"} {
		tag, err := w.pool.Exec(ctx,
			`UPDATE `+table+`
			 SET reset_password_token = NULL
			 WHERE reset_password_token IS NOT NULL
			   AND reset_password_expires < NOW()`,
		)
		if err != nil {
			w.log.Error().Err(err).Str("table", table).Msg("Sweep error")
			continue
		}
		total += tag.RowsAffected()
	}

	if total > 0 {
		w.log.Info().Int64("cleared", total).Msg("Expired reset tokens cleared")
	}
}
