package ban

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/warehouse-tracker/internal/redissvc"
)

const (
	strikeLimit  = 10
	strikeWindow = 10 * time.Minute
	banDuration  = 15 * time.Minute
)

var (
	rdb *redis.Client
	ctx context.Context
)

// SetRedisService wires the shared redis client. Without it strikes and
// bans are disabled and the rate limiter alone applies.
func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func strikeKey(ip string) string { return fmt.Sprintf("ratelimit:strikes:%s", ip) }
func banKey(ip string) string    { return fmt.Sprintf("ratelimit:ban:%s", ip) }

// IsBanned reports whether the client is currently banned.
func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(ip)).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to check ban state")
		return false
	}
	return n > 0
}

// RegisterStrike counts a rate-limit violation. Clients that collect
// strikeLimit strikes inside the window are banned for banDuration.
func RegisterStrike(ip, route string) {
	if rdb == nil {
		return
	}

	strikes, err := rdb.Incr(ctx, strikeKey(ip)).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to record strike")
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, strikeKey(ip), strikeWindow)
	}

	if strikes >= strikeLimit {
		if err := rdb.Set(ctx, banKey(ip), route, banDuration).Err(); err != nil {
			log.Error().Err(err).Msg("failed to record ban")
			return
		}
		rdb.Del(ctx, strikeKey(ip))
		log.Warn().
			Str("ip", ip).
			Str("route", route).
			Int64("strikes", strikes).
			Msg("client banned for repeated rate-limit violations")
	}
}
