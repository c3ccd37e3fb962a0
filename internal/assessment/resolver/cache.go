package resolver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	id "assure/pkg/domain"
)

// ReferenceResolver is the contract consumed by the assessment validator.
type ReferenceResolver interface {
	ResolveProject(ctx context.Context, projectID id.ProjectID) error
	ResolveActiveStandard(ctx context.Context, standardID id.StandardID) error
	ResolveActiveProfession(ctx context.Context, professionID id.ProfessionID) error
}

// Cached decorates a resolver with a Redis read-through cache for positive
// resolutions. Negative results are never cached, so a newly created entity
// is visible immediately. Soft-deletes drop the cached entry through the
// Invalidate hooks; the TTL only bounds staleness when an invalidation is
// missed (a delete issued while Redis was unreachable).
type Cached struct {
	inner  ReferenceResolver
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(inner ReferenceResolver, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *Cached) ResolveProject(ctx context.Context, projectID id.ProjectID) error {
	return c.resolve(ctx, "assure:ref:project:"+projectID.String(), func() error {
		return c.inner.ResolveProject(ctx, projectID)
	})
}

func (c *Cached) ResolveActiveStandard(ctx context.Context, standardID id.StandardID) error {
	return c.resolve(ctx, "assure:ref:standard:"+standardID.String(), func() error {
		return c.inner.ResolveActiveStandard(ctx, standardID)
	})
}

func (c *Cached) ResolveActiveProfession(ctx context.Context, professionID id.ProfessionID) error {
	return c.resolve(ctx, "assure:ref:profession:"+professionID.String(), func() error {
		return c.inner.ResolveActiveProfession(ctx, professionID)
	})
}

// InvalidateStandard drops the cached resolution for a standard so a
// soft-delete is visible immediately rather than after TTL expiry.
func (c *Cached) InvalidateStandard(ctx context.Context, standardID id.StandardID) {
	c.invalidate(ctx, "assure:ref:standard:"+standardID.String())
}

// InvalidateProfession drops the cached resolution for a profession.
func (c *Cached) InvalidateProfession(ctx context.Context, professionID id.ProfessionID) {
	c.invalidate(ctx, "assure:ref:profession:"+professionID.String())
}

func (c *Cached) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.WarnContext(ctx, "reference cache invalidation failed", "key", key, "error", err.Error())
	}
}

// resolve consults the cache first and falls back to the inner resolver.
// Redis faults degrade to a plain resolve rather than failing validation.
func (c *Cached) resolve(ctx context.Context, key string, load func() error) error {
	if err := c.client.Get(ctx, key).Err(); err == nil {
		return nil
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "reference cache read failed", "key", key, "error", err.Error())
	}

	if err := load(); err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, "1", c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "reference cache write failed", "key", key, "error", err.Error())
	}
	return nil
}
