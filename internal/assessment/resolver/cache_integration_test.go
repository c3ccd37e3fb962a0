//go:build integration

package resolver_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"assure/internal/assessment/resolver"
	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
	"assure/pkg/testutil/containers"
)

// countingResolver counts calls through to the inner resolver so the suite
// can observe cache hits versus loads.
type countingResolver struct {
	calls  atomic.Int32
	answer error
}

func (r *countingResolver) ResolveProject(context.Context, id.ProjectID) error {
	r.calls.Add(1)
	return r.answer
}

func (r *countingResolver) ResolveActiveStandard(context.Context, id.StandardID) error {
	r.calls.Add(1)
	return r.answer
}

func (r *countingResolver) ResolveActiveProfession(context.Context, id.ProfessionID) error {
	r.calls.Add(1)
	return r.answer
}

type CachedResolverSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestCachedResolverSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedResolverSuite))
}

func (s *CachedResolverSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *CachedResolverSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *CachedResolverSuite) newCached(inner resolver.ReferenceResolver, ttl time.Duration) *resolver.Cached {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return resolver.NewCached(inner, s.redis.Client, ttl, logger)
}

func (s *CachedResolverSuite) TestPositiveResolutionIsCached() {
	ctx := context.Background()
	inner := &countingResolver{}
	cached := s.newCached(inner, time.Minute)
	projectID := id.ProjectID(uuid.New())

	s.Require().NoError(cached.ResolveProject(ctx, projectID))
	s.Require().NoError(cached.ResolveProject(ctx, projectID))
	s.Require().NoError(cached.ResolveProject(ctx, projectID))

	s.Equal(int32(1), inner.calls.Load(), "repeat resolutions served from cache")
}

func (s *CachedResolverSuite) TestNegativeResolutionIsNotCached() {
	ctx := context.Background()
	inner := &countingResolver{answer: sentinel.ErrNotFound}
	cached := s.newCached(inner, time.Minute)
	standardID := id.StandardID(uuid.New())

	s.ErrorIs(cached.ResolveActiveStandard(ctx, standardID), sentinel.ErrNotFound)
	s.ErrorIs(cached.ResolveActiveStandard(ctx, standardID), sentinel.ErrNotFound)

	s.Equal(int32(2), inner.calls.Load(), "misses always reach the source")

	// Entity appears: next resolve sees it immediately.
	inner.answer = nil
	s.NoError(cached.ResolveActiveStandard(ctx, standardID))
	s.Equal(int32(3), inner.calls.Load())
}

func (s *CachedResolverSuite) TestEntriesExpireWithTTL() {
	ctx := context.Background()
	inner := &countingResolver{}
	cached := s.newCached(inner, 100*time.Millisecond)
	professionID := id.ProfessionID(uuid.New())

	s.Require().NoError(cached.ResolveActiveProfession(ctx, professionID))
	time.Sleep(200 * time.Millisecond)
	s.Require().NoError(cached.ResolveActiveProfession(ctx, professionID))

	s.Equal(int32(2), inner.calls.Load(), "expired entry reloads from the source")
}

func (s *CachedResolverSuite) TestInvalidateDropsCachedEntry() {
	ctx := context.Background()
	inner := &countingResolver{}
	cached := s.newCached(inner, time.Minute)
	standardID := id.StandardID(uuid.New())

	s.Require().NoError(cached.ResolveActiveStandard(ctx, standardID))
	s.Require().NoError(cached.ResolveActiveStandard(ctx, standardID))
	s.Require().Equal(int32(1), inner.calls.Load())

	// Standard is soft-deleted: the delete hook invalidates, the source now
	// answers not-found, and the next resolve must see it immediately.
	cached.InvalidateStandard(ctx, standardID)
	inner.answer = sentinel.ErrNotFound

	s.ErrorIs(cached.ResolveActiveStandard(ctx, standardID), sentinel.ErrNotFound)
	s.Equal(int32(2), inner.calls.Load(), "invalidated entry reloads from the source")
}

func (s *CachedResolverSuite) TestCacheKeysAreScopedByKind() {
	ctx := context.Background()
	inner := &countingResolver{}
	cached := s.newCached(inner, time.Minute)

	shared := uuid.New()
	s.Require().NoError(cached.ResolveProject(ctx, id.ProjectID(shared)))
	s.Require().NoError(cached.ResolveActiveStandard(ctx, id.StandardID(shared)))

	s.Equal(int32(2), inner.calls.Load(), "same UUID under a different kind is a distinct entry")
}
