package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. Both a single
// node client and a cluster client satisfy it.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for transactional writes
type Pipeliner interface {
	redis.Pipeliner
}
