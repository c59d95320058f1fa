package meals

import (
	"context"
	"encoding/json"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	kilobyte          = 1024
	minCacheSizeKB    = 512 // freecache enforces a 512 KB minimum
	mealSlotsCacheKey = "meal-slots"
)

type slotsLister interface {
	List(ctx context.Context) ([]nutrition.MealSlot, error)
}

// CachedRepo keeps the meal slot list in memory for ttlSeconds.
type CachedRepo struct {
	repo           slotsLister
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCachedRepo(repo slotsLister, cacheSizeKB, ttlSeconds int, metricsManager *metrics.Manager) *CachedRepo {
	if cacheSizeKB < minCacheSizeKB {
		cacheSizeKB = minCacheSizeKB
	}
	return &CachedRepo{
		repo:           repo,
		cache:          freecache.NewCache(cacheSizeKB * kilobyte),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) List(ctx context.Context) (_ []nutrition.MealSlot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.cached.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if slotsBytes, err := c.cache.Get([]byte(mealSlotsCacheKey)); err == nil {
		var slots []nutrition.MealSlot
		if err := json.Unmarshal(slotsBytes, &slots); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			c.metricsManager.CounterMealSlotsCache.WithLabelValues("hit").Inc()
			return slots, nil
		} else {
			log.Errorf("failed to unmarshal meal slots from cache: %s", err)
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	c.metricsManager.CounterMealSlotsCache.WithLabelValues("miss").Inc()

	slots, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	slotsBytes, err := json.Marshal(slots)
	if err != nil {
		log.Errorf("failed to marshal meal slots for cache: %s", err)
		return slots, nil
	}
	if err := c.cache.Set([]byte(mealSlotsCacheKey), slotsBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to write meal slots cache: %s", err)
	}

	return slots, nil
}

func (c *CachedRepo) GetBySlug(ctx context.Context, slug string) (*nutrition.MealSlot, error) {
	slots, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].Slug == slug {
			return &slots[i], nil
		}
	}
	return nil, ErrMealSlotNotFound
}

func (c *CachedRepo) Get(ctx context.Context, id uuid.UUID) (*nutrition.MealSlot, error) {
	slots, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], nil
		}
	}
	return nil, ErrMealSlotNotFound
}
