package service

import (
	"Encore/models"
	"context"
	"sort"
	"time"
)

var _ IMutualService = (*MutualService)(nil)

type IMutualService interface {
	MutualLikes(ctx context.Context, userID, friendID int64) ([]*models.Work, error)
}

// MutualService 两个用户共同点赞的剧目
// 好友关系要不要校验是调用方的策略，这里不管
type MutualService struct {
	ReactionStore IReactionStore
	WorkStore     IWorkStore
}

// MutualLikes 取两边 LIKE 集合的交集，按最近表态时间倒序
// 交集为空返回空切片不是错误
func (s *MutualService) MutualLikes(ctx context.Context, userID, friendID int64) ([]*models.Work, error) {
	if userID <= 0 {
		return nil, ErrUnauthenticated
	}

	like := models.ReactionLike
	mine, err := s.ReactionStore.ListByUser(ctx, userID, &like)
	if err != nil {
		return nil, err
	}
	theirs, err := s.ReactionStore.ListByUser(ctx, friendID, &like)
	if err != nil {
		return nil, err
	}

	mySet := make(map[int64]time.Time, len(mine))
	for _, r := range mine {
		mySet[r.WorkID] = r.UpdatedAt
	}

	// 交集里每个剧目记住两边更晚的那次表态，用于排序
	latest := make(map[int64]time.Time)
	ids := make([]int64, 0)
	for _, r := range theirs {
		mineAt, ok := mySet[r.WorkID]
		if !ok {
			continue
		}
		at := r.UpdatedAt
		if mineAt.After(at) {
			at = mineAt
		}
		latest[r.WorkID] = at
		ids = append(ids, r.WorkID)
	}

	works, err := s.WorkStore.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.Slice(works, func(i, j int) bool {
		return latest[works[i].ID].After(latest[works[j].ID])
	})
	if works == nil {
		works = []*models.Work{}
	}
	return works, nil
}
