package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
)

// ProfileViewStore remembers which (viewer, profile) pairs were already seen
// so a profile view is only counted once per distinct viewer.
type ProfileViewStore struct {
	inner     *redis.Client
	keyParser RedisKeyParser
}

const (
	// Redis only has string type, there is no boolean or int, so we use "1" to represent true
	RedisTrue = "1"
)

var ctx = context.Background()

func GetProfileViewStore() (*ProfileViewStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return &ProfileViewStore{
		inner:     redisClient,
		keyParser: RedisKeyParser{delimiter: "__"},
	}, nil
}

type RedisKeyParser struct {
	delimiter string
}

func (r RedisKeyParser) DecodeViewKey(key string) (string, string, error) {
	splits := strings.Split(key, r.delimiter)
	if (len(splits)) != 2 {
		return "", "", fmt.Errorf("invalid key: %s", key)
	}
	return splits[0], splits[1], nil
}

func (r RedisKeyParser) ValidateId(id string) bool {
	return !strings.Contains(id, r.delimiter)
}

func (r RedisKeyParser) EncodeViewKey(viewerId string, profileId string) (string, error) {
	if !r.ValidateId(viewerId) || !r.ValidateId(profileId) {
		return "", fmt.Errorf("invalid viewerId or profileId")
	}
	return fmt.Sprintf("%s%s%s", viewerId, r.delimiter, profileId), nil
}

// MarkProfileViewed records that viewerId looked at profileId. It returns true
// only the first time the pair is seen, which is when the caller should bump
// the profile's view counter.
func (s *ProfileViewStore) MarkProfileViewed(viewerId string, profileId string) (bool, error) {
	key, err := s.keyParser.EncodeViewKey(viewerId, profileId)
	if err != nil {
		return false, err
	}
	return s.inner.SetNX(ctx, key, RedisTrue, 0).Result()
}
