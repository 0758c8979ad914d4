package service

import (
	"Encore/models"
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"
)

// 内存版的各个 store，并发语义靠 cmap 的分片锁对齐真实存储的唯一键行为

type memReactionStore struct {
	m     cmap.ConcurrentMap[string, *models.Reaction]
	seq   atomic.Uint64
	clock atomic.Int64
}

func newMemReactionStore() *memReactionStore {
	return &memReactionStore{m: cmap.New[*models.Reaction]()}
}

func pairKey(userID, workID int64) string {
	return fmt.Sprintf("%d/%d", userID, workID)
}

// tick 单调递增的假时间，保证"最近更新在前"排序可断言
func (s *memReactionStore) tick() time.Time {
	return time.Unix(s.clock.Add(1), 0)
}

func (s *memReactionStore) Upsert(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*models.Reaction, error) {
	res := s.m.Upsert(pairKey(userID, workID), nil,
		func(exist bool, valueInMap, _ *models.Reaction) *models.Reaction {
			now := s.tick()
			if exist {
				valueInMap.Status = status
				valueInMap.UpdatedAt = now
				return valueInMap
			}
			return &models.Reaction{
				ID:        s.seq.Add(1),
				UserID:    userID,
				WorkID:    workID,
				Status:    status,
				CreatedAt: now,
				UpdatedAt: now,
			}
		})
	return res, nil
}

func (s *memReactionStore) GetByUserWork(ctx context.Context, userID, workID int64) (*models.Reaction, error) {
	if r, ok := s.m.Get(pairKey(userID, workID)); ok {
		return r, nil
	}
	return nil, nil
}

func (s *memReactionStore) ListByUser(ctx context.Context, userID int64, status *models.ReactionStatus) ([]*models.Reaction, error) {
	var items []*models.Reaction
	for _, r := range s.m.Items() {
		if r.UserID != userID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		items = append(items, r)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items, nil
}

func (s *memReactionStore) ListReactedWorkIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, r := range s.m.Items() {
		if r.UserID == userID {
			ids = append(ids, r.WorkID)
		}
	}
	return ids, nil
}

// rowCount 该用户的表态行数，断言唯一键语义用
func (s *memReactionStore) rowCount(userID int64) int {
	n := 0
	for _, r := range s.m.Items() {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

type memWorkStore struct {
	m cmap.ConcurrentMap[string, *models.Work]
}

func newMemWorkStore(works ...*models.Work) *memWorkStore {
	s := &memWorkStore{m: cmap.New[*models.Work]()}
	for _, w := range works {
		s.m.Set(fmt.Sprintf("%d", w.ID), w)
	}
	return s
}

func (s *memWorkStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.m.Has(fmt.Sprintf("%d", id)), nil
}

func (s *memWorkStore) visible(since *time.Time, excludeIDs []int64) []*models.Work {
	excluded := make(map[int64]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	var works []*models.Work
	for _, w := range s.m.Items() {
		if _, ok := excluded[w.ID]; ok {
			continue
		}
		if since != nil && w.CreatedAt.Before(*since) {
			continue
		}
		works = append(works, w)
	}
	sort.Slice(works, func(i, j int) bool {
		return works[i].CreatedAt.After(works[j].CreatedAt)
	})
	return works
}

func (s *memWorkStore) ListRecent(ctx context.Context, since *time.Time, excludeIDs []int64, limit int) ([]*models.Work, error) {
	works := s.visible(since, excludeIDs)
	if len(works) > limit {
		works = works[:limit]
	}
	return works, nil
}

func (s *memWorkStore) CountVisible(ctx context.Context, since *time.Time, excludeIDs []int64) (int64, error) {
	return int64(len(s.visible(since, excludeIDs))), nil
}

func (s *memWorkStore) FindByIDs(ctx context.Context, ids []int64) ([]*models.Work, error) {
	var works []*models.Work
	for _, id := range ids {
		if w, ok := s.m.Get(fmt.Sprintf("%d", id)); ok {
			works = append(works, w)
		}
	}
	return works, nil
}

// stuckWorkStore 卡死的目录查询，测 feed 的超时兜底
type stuckWorkStore struct {
	*memWorkStore
}

func (s *stuckWorkStore) ListRecent(ctx context.Context, since *time.Time, excludeIDs []int64, limit int) ([]*models.Work, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stuckWorkStore) CountVisible(ctx context.Context, since *time.Time, excludeIDs []int64) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

type memUserStore struct {
	m cmap.ConcurrentMap[string, *models.User]
}

func newMemUserStore(users ...*models.User) *memUserStore {
	s := &memUserStore{m: cmap.New[*models.User]()}
	for _, u := range users {
		s.m.Set(fmt.Sprintf("%d", u.ID), u)
	}
	return s
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.m.Items() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.m.Has(fmt.Sprintf("%d", id)), nil
}

func (s *memUserStore) Create(ctx context.Context, user *models.User) error {
	if exist, _ := s.FindByEmail(ctx, user.Email); exist != nil {
		return gorm.ErrDuplicatedKey
	}
	s.m.Set(fmt.Sprintf("%d", user.ID), user)
	return nil
}

type memFriendshipStore struct {
	m cmap.ConcurrentMap[string, *models.Friendship]
}

func newMemFriendshipStore() *memFriendshipStore {
	return &memFriendshipStore{m: cmap.New[*models.Friendship]()}
}

func (s *memFriendshipStore) IsFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	return s.m.Has(pairKey(userID, friendID)), nil
}

func (s *memFriendshipStore) CreateEdge(ctx context.Context, userID, friendID int64) error {
	s.m.SetIfAbsent(pairKey(userID, friendID), &models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Friend:   &models.User{ID: friendID},
	})
	s.m.SetIfAbsent(pairKey(friendID, userID), &models.Friendship{
		UserID:   friendID,
		FriendID: userID,
		Friend:   &models.User{ID: userID},
	})
	return nil
}

func (s *memFriendshipStore) ListByUser(ctx context.Context, userID int64) ([]*models.Friendship, error) {
	var edges []*models.Friendship
	for _, e := range s.m.Items() {
		if e.UserID == userID {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

// memReactedCache 和真实 redis 缓存同样的语义: 没预热不追加
type memReactedCache struct {
	mu   sync.Mutex
	sets map[int64]map[int64]struct{}
}

func newMemReactedCache() *memReactedCache {
	return &memReactedCache{sets: map[int64]map[int64]struct{}{}}
}

func (c *memReactedCache) All(ctx context.Context, uid int64) ([]int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[uid]
	if !ok {
		return nil, false
	}
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids, true
}

func (c *memReactedCache) Add(ctx context.Context, uid, workID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.sets[uid]; ok {
		set[workID] = struct{}{}
	}
}

func (c *memReactedCache) Warm(ctx context.Context, uid int64, workIDs []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set := make(map[int64]struct{}, len(workIDs))
	for _, id := range workIDs {
		set[id] = struct{}{}
	}
	c.sets[uid] = set
}

// 测试常用的三件套
func workAt(id int64, createdAt time.Time) *models.Work {
	return &models.Work{
		ID:        id,
		Title:     fmt.Sprintf("work-%d", id),
		SourceURL: fmt.Sprintf("seed://work-%d", id),
		CreatedAt: createdAt,
	}
}
