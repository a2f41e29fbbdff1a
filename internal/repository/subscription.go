package repository

import (
	"context"
	"subsage/internal/model"
)

type SubscriptionRepository interface {
	List(ctx context.Context) ([]model.Subscription, error)
	Create(ctx context.Context, sub *model.Subscription) error
	Delete(ctx context.Context, id int64) (*model.Subscription, error)
	Count(ctx context.Context) (int, error)
}
