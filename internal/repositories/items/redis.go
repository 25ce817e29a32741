package items

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-forge/internal/redis"
)

const (
	itemKeyPrefix   = "item:"
	ownerKeyPrefix  = "owner:"
	ownerItemsSuffix = ":items"

	// Error messages
	errSnapshotNil  = "snapshot cannot be nil"
	errItemIDEmpty  = "item ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis item repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// ItemKey returns the Redis key holding an item snapshot
func ItemKey(itemID string) string {
	return itemKeyPrefix + itemID
}

// OwnerKey returns the Redis set indexing an owner's items
func OwnerKey(ownerID string) string {
	return ownerKeyPrefix + ownerID + ownerItemsSuffix
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	snapshot := input.Snapshot

	// An item changing hands must leave its previous owner's index
	previous, err := r.Get(ctx, GetInput{ItemID: snapshot.ItemID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %s", snapshot.ItemID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, ItemKey(snapshot.ItemID), data, 0)
	if previous != nil && previous.Snapshot.OwnerID != "" && previous.Snapshot.OwnerID != snapshot.OwnerID {
		pipe.SRem(ctx, OwnerKey(previous.Snapshot.OwnerID), snapshot.ItemID)
	}
	if snapshot.OwnerID != "" {
		pipe.SAdd(ctx, OwnerKey(snapshot.OwnerID), snapshot.ItemID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to save item "+snapshot.ItemID)
	}

	slog.DebugContext(ctx, "saved item snapshot",
		"item_id", snapshot.ItemID,
		"owner_id", snapshot.OwnerID,
		"rarity", snapshot.Rarity.String())

	return &SaveOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, ItemKey(input.ItemID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ItemID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to get item "+input.ItemID)
	}

	var snapshot entities.ItemSnapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal item "+input.ItemID)
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, ItemKey(input.ItemID))
	if owner := existing.Snapshot.OwnerID; owner != "" {
		pipe.SRem(ctx, OwnerKey(owner), input.ItemID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete item "+input.ItemID)
	}

	slog.DebugContext(ctx, "deleted item snapshot", "item_id", input.ItemID)

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := OwnerKey(input.OwnerID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read owner index",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list items for "+input.OwnerID)
	}
	sort.Strings(ids)

	snapshots := make([]*entities.ItemSnapshot, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ItemID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "item not found, cleaning up index",
					"item_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get item %s", id)
		}
		snapshots = append(snapshots, out.Snapshot)
	}

	slog.DebugContext(ctx, "listed items by owner",
		"owner_id", input.OwnerID,
		"count", len(snapshots))

	return &ListByOwnerOutput{Snapshots: snapshots}, nil
}
