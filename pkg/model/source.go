package model

import "context"

// Source는 식별자 기반 단건 조회의 최소 계약입니다.
// 레코드가 없는 것은 에러가 아니라 (nil, false, nil)로 표현합니다.
type Source interface {
	FindByID(ctx context.Context, id string) (any, bool, error)
}
