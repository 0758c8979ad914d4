package service

import (
	"Encore/models"
	"context"
	"time"
)

// 服务层只依赖这些窄接口，dao 层实现，测试用内存实现替换

type IReactionStore interface {
	// Upsert 必须是对 (userID, workID) 的单次原子覆盖写
	Upsert(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*models.Reaction, error)
	GetByUserWork(ctx context.Context, userID, workID int64) (*models.Reaction, error)
	ListByUser(ctx context.Context, userID int64, status *models.ReactionStatus) ([]*models.Reaction, error)
	ListReactedWorkIDs(ctx context.Context, userID int64) ([]int64, error)
}

type IWorkStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
	ListRecent(ctx context.Context, since *time.Time, excludeIDs []int64, limit int) ([]*models.Work, error)
	CountVisible(ctx context.Context, since *time.Time, excludeIDs []int64) (int64, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Work, error)
}

type IUserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type IFriendshipStore interface {
	IsFriend(ctx context.Context, userID, friendID int64) (bool, error)
	CreateEdge(ctx context.Context, userID, friendID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Friendship, error)
}

// IReactedCache feed 旁路缓存，全部操作尽力而为，不影响正确性
type IReactedCache interface {
	All(ctx context.Context, uid int64) ([]int64, bool)
	Add(ctx context.Context, uid, workID int64)
	Warm(ctx context.Context, uid int64, workIDs []int64)
}
