package service

import "errors"

var (
	ErrUnauthenticated = errors.New("未登录")
	ErrWorkNotFound    = errors.New("剧目不存在")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrSelfFriend      = errors.New("不能添加自己为好友")
	ErrNotFriends      = errors.New("不是好友关系")
	ErrInvalidToken    = errors.New("邀请令牌无效")
	ErrInvalidEmail    = errors.New("邮箱格式错误")
	ErrWeakPassword    = errors.New("密码太短")
	ErrEmailExists     = errors.New("邮箱已注册")
	ErrBadCredentials  = errors.New("邮箱或密码错误")
	ErrFeedTimeout     = errors.New("feed 查询超时")
)
