package cache

import (
	"fmt"
	"time"

	"github.com/tu-usuario/empleos-api/pkg/config"
	"github.com/viccon/sturdyc"
)

// Store es un cache clave-valor en memoria con expiración fija por entrada.
// Es advisory: la ausencia de una clave siempre es un estado válido y la DB
// sigue siendo la fuente de verdad. La staleness queda acotada por el TTL.
type Store[T any] struct {
	client *sturdyc.Client[T]
}

// NewStore construye el cache con el TTL fijo de la configuración (60s por defecto).
func NewStore[T any](cfg config.CacheConfig) *Store[T] {
	return &Store[T]{
		client: sturdyc.New[T](cfg.Capacity, cfg.NumShards, cfg.TTL(), cfg.EvictionPercentage),
	}
}

// NewStoreWithTTL construye el cache con un TTL explícito (útil en tests).
func NewStoreWithTTL[T any](capacity, numShards int, ttl time.Duration) *Store[T] {
	return &Store[T]{
		client: sturdyc.New[T](capacity, numShards, ttl, 10),
	}
}

// Get devuelve el valor cacheado y true, o el cero y false si la clave no
// existe o ya expiró.
func (s *Store[T]) Get(key string) (T, bool) {
	return s.client.Get(key)
}

// Set escribe el valor bajo la clave con el TTL fijo del store.
func (s *Store[T]) Set(key string, value T) {
	s.client.Set(key, value)
}

// SearchKey codifica de forma determinística todos los parámetros que afectan
// el resultado de una búsqueda, para que consultas distintas no se contaminen.
func SearchKey(operation, term string, offset, limit int) string {
	return fmt.Sprintf("%s:%s:%d:%d", operation, term, offset, limit)
}
