package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"subsage/internal/model"
)

// MemorySubscriptionRepo keeps subscriptions in insertion order for the
// lifetime of the process. Ids start at 1 and are never reused.
type MemorySubscriptionRepo struct {
	mu     sync.RWMutex
	subs   []model.Subscription
	nextID int64
	log    *slog.Logger
}

var _ SubscriptionRepository = (*MemorySubscriptionRepo)(nil)

func NewMemorySubscriptionRepo(log *slog.Logger) *MemorySubscriptionRepo {
	return &MemorySubscriptionRepo{
		nextID: 1,
		log:    log.With(slog.String("component", "repository")),
	}
}

func (r *MemorySubscriptionRepo) List(ctx context.Context) ([]model.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := make([]model.Subscription, len(r.subs))
	copy(subs, r.subs)
	return subs, nil
}

func (r *MemorySubscriptionRepo) Create(ctx context.Context, sub *model.Subscription) error {
	const op = "repository.memory.Create"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	sub.ID = r.nextID
	r.subs = append(r.subs, *sub)
	r.nextID++
	r.mu.Unlock()

	r.log.Debug("subscription created", slog.Int64("id", sub.ID), slog.String("name", sub.Name))
	return nil
}

func (r *MemorySubscriptionRepo) Delete(ctx context.Context, id int64) (*model.Subscription, error) {
	const op = "repository.memory.Delete"

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sub := range r.subs {
		if sub.ID != id {
			continue
		}
		deleted := sub
		r.subs = append(r.subs[:i], r.subs[i+1:]...)
		r.log.Debug("subscription deleted", slog.Int64("id", id))
		return &deleted, nil
	}

	return nil, fmt.Errorf("%s: id %d: %w", op, id, model.ErrSubscriptionNotFound)
}

func (r *MemorySubscriptionRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs), nil
}
