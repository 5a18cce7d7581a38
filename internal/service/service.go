// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, assigns identifiers,
// defaults and timestamps, and runs every write inside one gateway
// transaction.
package service

import (
	"context"
	"time"

	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// base carries what every service needs.
type base struct {
	server *server.Server
	repos  *repository.Repositories
	now    func() time.Time
	// enqueue is nil when background jobs are disabled.
	enqueue func(ctx context.Context, task *asynq.Task) error
}

func newBase(s *server.Server, repos *repository.Repositories) base {
	b := base{
		server: s,
		repos:  repos,
		now:    func() time.Time { return time.Now().UTC() },
	}
	if s.Job != nil {
		b.enqueue = s.Job.Enqueue
	}
	return b
}

// inTx runs fn with repositories bound to a single transaction.
func (b *base) inTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return b.repos.Gateway().InTx(ctx, func(tx store.Gateway) error {
		return fn(b.repos.WithTx(tx))
	})
}

// logger prefers the request-scoped logger attached to ctx.
func (b *base) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return b.server.Logger
}

// notify enqueues a notification after a successful commit. Failures are
// logged and never reach the caller.
func (b *base) notify(ctx context.Context, task *asynq.Task, err error) {
	if b.enqueue == nil {
		return
	}
	if err == nil {
		err = b.enqueue(ctx, task)
	}
	if err != nil {
		b.logger(ctx).Error().Err(err).Msg("failed to enqueue notification")
	}
}
