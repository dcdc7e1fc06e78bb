package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"gearstore-backend/models"
)

// Journal keys. The store keeps whole lists under fixed keys: read the full
// list, rewrite it on every mutation. No TTL, journal data never expires.
const (
	transactionsKey   = "gear:sales:transactions"
	customProductsKey = "gear:sales:custom_products"
)

// JournalRepository defines the interface for the sales journal store.
type JournalRepository interface {
	Transactions(ctx context.Context) ([]models.Transaction, error)
	SaveTransactions(ctx context.Context, txs []models.Transaction) error
	CustomProducts(ctx context.Context) ([]models.CustomProduct, error)
	SaveCustomProducts(ctx context.Context, products []models.CustomProduct) error
}

// RedisJournalRepository implements JournalRepository with each list stored
// as one JSON blob per key.
type RedisJournalRepository struct {
	client *redis.Client
}

func NewRedisJournalRepository(client *redis.Client) *RedisJournalRepository {
	return &RedisJournalRepository{client: client}
}

func (r *RedisJournalRepository) Transactions(ctx context.Context) ([]models.Transaction, error) {
	data, err := r.client.Get(ctx, transactionsKey).Result()
	if err == redis.Nil {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if err := json.Unmarshal([]byte(data), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *RedisJournalRepository) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, transactionsKey, data, 0).Err()
}

func (r *RedisJournalRepository) CustomProducts(ctx context.Context) ([]models.CustomProduct, error) {
	data, err := r.client.Get(ctx, customProductsKey).Result()
	if err == redis.Nil {
		return []models.CustomProduct{}, nil
	}
	if err != nil {
		return nil, err
	}

	var products []models.CustomProduct
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RedisJournalRepository) SaveCustomProducts(ctx context.Context, products []models.CustomProduct) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, customProductsKey, data, 0).Err()
}
