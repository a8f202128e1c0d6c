package store

import "errors"

// 类型化错误：调用方用 errors.Is 区分业务失败；其余一律视为存储层错误
var (
	ErrDuplicateUsername  = errors.New("用户名已存在")
	ErrDuplicateEventCode = errors.New("活动码已存在")
	ErrAlreadyJoined      = errors.New("已加入该活动")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidRole        = errors.New("非法的角色取值")
	ErrNotFound           = errors.New("记录不存在")
)
