package cron

import (
	"context"
	"log/slog"
	"time"
)

const RevokedTokenPruneInterval = 15 * time.Minute

// TokenPruner is satisfied by jwt.Service.
type TokenPruner interface {
	PruneRevoked(now time.Time) int
}

type TokenJobs struct {
	pruner TokenPruner
	now    func() time.Time
}

func NewTokenJobs(pruner TokenPruner) *TokenJobs {
	return &TokenJobs{pruner: pruner, now: time.Now}
}

// Register adds the token jobs to s.
func (j *TokenJobs) Register(s *Scheduler) {
	s.AddJob("prune_revoked_tokens", RevokedTokenPruneInterval, j.PruneRevokedTokens)
}

// PruneRevokedTokens drops revoked tokens whose expiry has passed.
func (j *TokenJobs) PruneRevokedTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pruned := j.pruner.PruneRevoked(j.now()); pruned > 0 {
		slog.Info("Pruned revoked tokens", "count", pruned)
	}
	return nil
}
