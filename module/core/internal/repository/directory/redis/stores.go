package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/directory"
	"github.com/Witchkitt/grabbit-clean-main/module/core/service"
)

var _ directory.StoreDirectory = (*StoreDirectory)(nil)

const (
	geoKey      = "stores:geo"
	storeKeyFmt = "store:%s"
	maxResults  = 50
)

// StoreDirectory caches the store snapshot in a redis geo set plus one hash
// per store, so nearby queries are a single GEORADIUS away.
type StoreDirectory struct {
	client *redis.Client
}

func NewStoreDirectory(client *redis.Client) *StoreDirectory {
	return &StoreDirectory{client: client}
}

// Seed replaces the cached store set with the given snapshot.
func (d *StoreDirectory) Seed(ctx context.Context, stores []domain.Store) error {
	if err := d.client.Del(ctx, geoKey).Err(); err != nil {
		return fmt.Errorf("clear geo set: %w", err)
	}

	for _, store := range stores {
		data, err := json.Marshal(store)
		if err != nil {
			return fmt.Errorf("marshal store %s: %w", store.ID, err)
		}
		if err := d.client.HSet(ctx, fmt.Sprintf(storeKeyFmt, store.ID), "data", data).Err(); err != nil {
			return fmt.Errorf("set store %s: %w", store.ID, err)
		}
		err = d.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Name:      store.ID,
			Longitude: store.Coordinates.Lon,
			Latitude:  store.Coordinates.Lat,
		}).Err()
		if err != nil {
			return fmt.Errorf("geo add store %s: %w", store.ID, err)
		}
	}

	log.Printf("seeded %d stores into directory", len(stores))
	return nil
}

// Nearby returns stores within radiusMeters of center, closest first,
// optionally filtered to one canonical category.
func (d *StoreDirectory) Nearby(ctx context.Context, center domain.Coordinate, radiusMeters float64, category string) ([]domain.Store, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	geoResults, err := d.client.GeoRadius(ctx, geoKey, center.Lon, center.Lat, &redis.GeoRadiusQuery{
		Radius:    radiusMeters,
		Unit:      "m",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
		Count:     maxResults,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geo radius: %w", err)
	}

	var results []domain.Store
	for _, geoResult := range geoResults {
		data, err := d.client.HGet(ctx, fmt.Sprintf(storeKeyFmt, geoResult.Name), "data").Result()
		if err != nil {
			log.Printf("missing store data for %s: %v", geoResult.Name, err)
			continue
		}
		var store domain.Store
		if err := json.Unmarshal([]byte(data), &store); err != nil {
			log.Printf("corrupt store data for %s: %v", geoResult.Name, err)
			continue
		}
		if category != "" && !hasCategory(&store, category) {
			continue
		}
		results = append(results, store)
	}
	return results, nil
}

func hasCategory(store *domain.Store, category string) bool {
	for _, c := range service.StoreCategories(store) {
		if c == category {
			return true
		}
	}
	return false
}
