package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"pdv/models"

	"github.com/redis/go-redis/v9"
)

const productCacheTTL = 10 * time.Minute

type ProductStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// ProductService serves the PDV catalog. The list is cached in redis when a
// client is available; a nil client disables caching.
type ProductService struct {
	products ProductStore
	cache    *redis.Client
}

func NewProductService(products ProductStore, cache *redis.Client) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func productCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func (s *ProductService) GetAllProducts(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	key := productCacheKey(page, limit)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var resp models.PaginationResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	products, total, err := s.products.GetAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, data, productCacheTTL).Err(); err != nil {
				log.Printf("products: cache set: %v", err)
			}
		}
	}
	return resp, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// InvalidateCache drops every cached product page. Stock changes after each
// sale, so cached pages go stale.
func (s *ProductService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("products: cache invalidate: %v", err)
	}
}
