package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/eugenyefimov/go-shop/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ProductStore is the slice of the document store the catalog needs.
type ProductStore interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

// Service is the read-only product catalog accessor: full scans and
// single-key gets, fronted by a read-through cache. Cached reads may serve
// a product for up to the cache TTL after it is deleted from the store, so
// only the product endpoints sit behind this service; cart views and
// checkout snapshots read the store accessor directly. Cache failures
// degrade to direct store reads.
type Service struct {
	store ProductStore
	cache ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(store ProductStore, cache ProductCache) *Service {
	return &Service{
		store: store,
		cache: cache,
	}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	v, err, _ := s.sfg.Do("product:"+id, func() (interface{}, error) {
		product, err := s.cache.GetProduct(ctx, id)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		product, err = s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetProduct(context.Background(), product); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("products:all", func() (interface{}, error) {
		products, err := s.cache.GetList(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		products, err = s.store.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetList(context.Background(), products); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}
