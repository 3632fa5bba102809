package main

import (
	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/httperr"
)

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// GetUser는 바인딩 선언이 미리 조회해 둔 user를 꺼내 반환합니다.
// 조회 실패(404)는 여기 도달하기 전에 처리됩니다.
func (c *UserController) GetUser(ctx core.ExecutionContext) (*User, error) {
	user, ok := binding.Bound[*User](ctx, "user")
	if !ok {
		return nil, httperr.Internal("user 바인딩이 누락되었습니다", nil)
	}
	return user, nil
}

// ListUsers는 바인딩 범위(Only: GetUser) 밖이므로 조회 없이 실행됩니다.
func (c *UserController) ListUsers(ctx core.ExecutionContext) ([]string, error) {
	return []string{"tether-user"}, nil
}
