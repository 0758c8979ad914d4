package service

import (
	"Encore/models"
	"context"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	Like(ctx context.Context, userID, workID int64) (*models.Reaction, bool, error)
	Dislike(ctx context.Context, userID, workID int64) (*models.Reaction, error)
	MarkSeen(ctx context.Context, userID, workID int64) (*models.Reaction, error)
	React(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*models.Reaction, error)
	ListByStatus(ctx context.Context, userID int64, status *models.ReactionStatus) ([]*models.Reaction, error)
}

type ReactionService struct {
	ReactionStore IReactionStore
	WorkStore     IWorkStore
	Cache         IReactedCache
}

// Like 点赞，幂等
// 第二个返回值表示该剧目之前就已经是 LIKE，重复点赞只是信号不是错误
func (s *ReactionService) Like(ctx context.Context, userID, workID int64) (*models.Reaction, bool, error) {
	prev, err := s.react(ctx, userID, workID, models.ReactionLike)
	if err != nil {
		return nil, false, err
	}
	alreadyExisted := prev.prev != nil && prev.prev.Status == models.ReactionLike
	return prev.cur, alreadyExisted, nil
}

// Dislike 左滑，同时承担"取消点赞"
// 取消点赞落在 DISLIKE 而不是删除记录，保证该剧目不会重新出现在 feed 里
func (s *ReactionService) Dislike(ctx context.Context, userID, workID int64) (*models.Reaction, error) {
	r, err := s.react(ctx, userID, workID, models.ReactionDislike)
	if err != nil {
		return nil, err
	}
	return r.cur, nil
}

// MarkSeen 标记已读
func (s *ReactionService) MarkSeen(ctx context.Context, userID, workID int64) (*models.Reaction, error) {
	r, err := s.react(ctx, userID, workID, models.ReactionSeen)
	if err != nil {
		return nil, err
	}
	return r.cur, nil
}

// React 通用表态入口，POST /reactions 用
func (s *ReactionService) React(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*models.Reaction, error) {
	r, err := s.react(ctx, userID, workID, status)
	if err != nil {
		return nil, err
	}
	return r.cur, nil
}

// ListByStatus 用户的表态列表，最近更新在前
func (s *ReactionService) ListByStatus(ctx context.Context, userID int64, status *models.ReactionStatus) ([]*models.Reaction, error) {
	if userID <= 0 {
		return nil, ErrUnauthenticated
	}
	return s.ReactionStore.ListByUser(ctx, userID, status)
}

type reactResult struct {
	prev *models.Reaction
	cur  *models.Reaction
}

func (s *ReactionService) react(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*reactResult, error) {
	if userID <= 0 {
		return nil, ErrUnauthenticated
	}

	// 校验剧目存在
	exist, err := s.WorkStore.Exists(ctx, workID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrWorkNotFound
	}

	prev, err := s.ReactionStore.GetByUserWork(ctx, userID, workID)
	if err != nil {
		return nil, err
	}

	// 原子覆盖写，同一对儿的并发请求由存储层唯一键收敛，后写赢
	cur, err := s.ReactionStore.Upsert(ctx, userID, workID, status)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Add(ctx, userID, workID)
	}
	return &reactResult{prev: prev, cur: cur}, nil
}
