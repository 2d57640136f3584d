package repo

import (
	"context"
	"encoding/json"
	"time"

	"mirror-store/internal/cache"
	"mirror-store/internal/models"
)

const itemsCatalogKey = "items:catalog"

// ItemsCached serves the catalog listing cache-aside and invalidates on
// writes. Redis being down only costs the shortcut; reads fall through to
// Postgres.
type ItemsCached struct {
	PG    *ItemsPG
	Redis *cache.Redis
	TTL   time.Duration
}

func (r *ItemsCached) List(ctx context.Context) ([]models.Item, error) {
	if s, err := r.Redis.GetString(ctx, itemsCatalogKey); err == nil {
		var items []models.Item
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return items, nil
		}
	}

	items, err := r.PG.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(items); err == nil {
		_ = r.Redis.SetString(ctx, itemsCatalogKey, string(b), r.TTL)
	}
	return items, nil
}

func (r *ItemsCached) Get(ctx context.Context, id string) (models.Item, error) {
	return r.PG.Get(ctx, id)
}

func (r *ItemsCached) Insert(ctx context.Context, it models.Item) error {
	if err := r.PG.Insert(ctx, it); err != nil {
		return err
	}
	_ = r.Redis.Del(ctx, itemsCatalogKey)
	return nil
}

func (r *ItemsCached) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := r.PG.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	_ = r.Redis.Del(ctx, itemsCatalogKey)
	return ok, nil
}
