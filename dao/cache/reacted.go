package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// 已表态集合过期时间 - 30天
const reactedExpireAt = 30 * 24 * time.Hour

// 哨兵成员，区分"空集合"和"未预热"
const reactedSentinel = "0"

// 只在集合已存在时追加，避免把预热中的集合写成半截
var addScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	redis.call("SADD", KEYS[1], ARGV[1])
	redis.call("EXPIRE", KEYS[1], ARGV[2])
	return 1
end
return 0
`)

// ReactedStorage 用户已表态剧目 ID 集合的 redis 缓存
// 信息源永远是 reactions 表，这里只是 feed 查询的旁路
type ReactedStorage struct {
	redis *redis.Client
}

func NewReactedStorage(rds *redis.Client) *ReactedStorage {
	return &ReactedStorage{rds}
}

func (s *ReactedStorage) name(uid int64) string {
	return fmt.Sprintf("encore:reacted:uid_%d", uid)
}

// Add 表态落库后追加一个剧目 ID
// 缓存未预热时不写，等下次 Warm
func (s *ReactedStorage) Add(ctx context.Context, uid, workID int64) {
	_, _ = addScript.Run(ctx, s.redis,
		[]string{s.name(uid)},
		strconv.FormatInt(workID, 10),
		int(reactedExpireAt.Seconds()),
	).Result()
}

// Warm 用数据库里的全量 ID 重建集合
func (s *ReactedStorage) Warm(ctx context.Context, uid int64, workIDs []int64) {
	members := make([]any, 0, len(workIDs)+1)
	members = append(members, reactedSentinel)
	for _, id := range workIDs {
		members = append(members, strconv.FormatInt(id, 10))
	}

	name := s.name(uid)
	pipe := s.redis.Pipeline()
	pipe.Del(ctx, name)
	pipe.SAdd(ctx, name, members...)
	pipe.Expire(ctx, name, reactedExpireAt)
	_, _ = pipe.Exec(ctx)
}

// All 读取集合，第二个返回值为 false 表示未命中
func (s *ReactedStorage) All(ctx context.Context, uid int64) ([]int64, bool) {
	members, err := s.redis.SMembers(ctx, s.name(uid)).Result()
	if err != nil || len(members) == 0 {
		return nil, false
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if m == reactedSentinel {
			continue
		}
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, true
}

// Del 作废缓存
func (s *ReactedStorage) Del(ctx context.Context, uid int64) {
	s.redis.Del(ctx, s.name(uid))
}
