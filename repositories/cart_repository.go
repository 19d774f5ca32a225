package repositories

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"pdv/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultCartKey      = "carrinho"
	DefaultCheckoutLock = 30 * time.Second
)

// CartRepository persists the cart of one PDV terminal under a single key.
// Load never fails: a missing or unreadable value is an empty cart.
//
// TryLock claims the checkout of the cart for every process sharing the key.
// It reports false while another checkout holds it.
type CartRepository interface {
	Load(ctx context.Context) models.Cart
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context) error
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// CartKey scopes the base key to a terminal when one is configured.
func CartKey(base, terminal string) string {
	if base == "" {
		base = DefaultCartKey
	}
	if terminal == "" {
		return base
	}
	return base + ":" + terminal
}

// checkoutLockKey is the key that marks a checkout in flight for cartKey.
func checkoutLockKey(cartKey string) string {
	return cartKey + ":checkout"
}

// unlockScript deletes the lock only while it still holds our token, so an
// expired lock taken over by another terminal is left alone.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCartRepository struct {
	client  *redis.Client
	key     string
	lockTTL time.Duration
	token   string
}

// NewRedisCartRepository stores the cart under key. A checkout lock expires
// after lockTTL, which should cover the sale request timeout.
func NewRedisCartRepository(client *redis.Client, key string, lockTTL time.Duration) *RedisCartRepository {
	if key == "" {
		key = DefaultCartKey
	}
	if lockTTL <= 0 {
		lockTTL = DefaultCheckoutLock
	}
	return &RedisCartRepository{client: client, key: key, lockTTL: lockTTL, token: uuid.NewString()}
}

func (r *RedisCartRepository) Load(ctx context.Context) models.Cart {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cart: read %s: %v", r.key, err)
		}
		return models.Cart{}
	}
	return models.DecodeCart(data)
}

func (r *RedisCartRepository) Save(ctx context.Context, cart models.Cart) error {
	data, err := models.EncodeCart(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisCartRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *RedisCartRepository) TryLock(ctx context.Context) (bool, error) {
	return r.client.SetNX(ctx, checkoutLockKey(r.key), r.token, r.lockTTL).Result()
}

func (r *RedisCartRepository) Unlock(ctx context.Context) error {
	return unlockScript.Run(ctx, r.client, []string{checkoutLockKey(r.key)}, r.token).Err()
}

// MemoryCartRepository keeps the encoded cart in memory. It goes through the
// same encoding as the redis repository so decode recovery behaves the same.
type MemoryCartRepository struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

func (r *MemoryCartRepository) Load(ctx context.Context) models.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.DecodeCart(r.data)
}

func (r *MemoryCartRepository) Save(ctx context.Context, cart models.Cart) error {
	data, err := models.EncodeCart(cart)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.data = nil
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) TryLock(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked {
		return false, nil
	}
	r.locked = true
	return true, nil
}

func (r *MemoryCartRepository) Unlock(ctx context.Context) error {
	r.mu.Lock()
	r.locked = false
	r.mu.Unlock()
	return nil
}

// SetRaw stores bytes as-is, the way another tab or a user could.
func (r *MemoryCartRepository) SetRaw(data []byte) {
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
}

// Stored reports whether the key currently holds a value.
func (r *MemoryCartRepository) Stored() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data != nil
}
