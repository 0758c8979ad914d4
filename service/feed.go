package service

import (
	"Encore/models"
	"context"
	"errors"
	"time"

	"github.com/sourcegraph/conc/pool"
)

const (
	FeedDefaultPer = 100
	FeedMaxPer     = 200

	// feed 查询总耗时上限，超了宁可空手而归也不挂着
	defaultFeedTimeout = 6 * time.Second
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	SelectFeed(ctx context.Context, userID int64, per int, since *time.Time) (int64, []*models.Work, error)
}

type FeedService struct {
	ReactionStore IReactionStore
	WorkStore     IWorkStore
	Cache         IReactedCache

	// 零值表示用默认 6s
	Timeout time.Duration
}

// SelectFeed 给用户算"没见过"的牌堆
// 排除规则是全量的: LIKE/DISLIKE/SEEN 任何一种表态都把剧目从 feed 里拿掉，
// 这是发现流和点赞列表的本质区别
func (s *FeedService) SelectFeed(ctx context.Context, userID int64, per int, since *time.Time) (int64, []*models.Work, error) {
	if userID <= 0 {
		return 0, nil, ErrUnauthenticated
	}

	if per <= 0 {
		per = FeedDefaultPer
	}
	if per > FeedMaxPer {
		per = FeedMaxPer
	}

	timeout := s.Timeout
	if timeout == 0 {
		timeout = defaultFeedTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reactedIDs, err := s.reactedWorkIDs(ctx, userID)
	if err != nil {
		return 0, nil, s.mapErr(err)
	}

	// count 和分页并行跑
	var (
		total int64
		works []*models.Work
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		n, err := s.WorkStore.CountVisible(ctx, since, reactedIDs)
		total = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.WorkStore.ListRecent(ctx, since, reactedIDs, per)
		works = items
		return err
	})
	if err := p.Wait(); err != nil {
		return 0, nil, s.mapErr(err)
	}

	if works == nil {
		works = []*models.Work{}
	}
	return total, works, nil
}

func (s *FeedService) reactedWorkIDs(ctx context.Context, userID int64) ([]int64, error) {
	if s.Cache != nil {
		if ids, ok := s.Cache.All(ctx, userID); ok {
			return ids, nil
		}
	}

	ids, err := s.ReactionStore.ListReactedWorkIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Warm(ctx, userID, ids)
	}
	return ids, nil
}

func (s *FeedService) mapErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrFeedTimeout
	}
	return err
}
