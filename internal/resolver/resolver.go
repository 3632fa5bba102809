package resolver

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

// ParameterMeta는 컨트롤러 메서드 파라미터 하나의 메타데이터입니다.
type ParameterMeta struct {
	// 리시버를 제외한 파라미터 순번
	Index int
	Type  reflect.Type

	// path 타입 파라미터에 매핑된 :param 이름 (해당 없으면 빈 값)
	PathKey string
}

// ArgumentResolver는 파라미터 타입 하나를 값으로 변환합니다.
type ArgumentResolver interface {
	Supports(pm ParameterMeta) bool
	Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error)
}

type Registry struct {
	resolvers []ArgumentResolver
}

func NewRegistry(resolvers ...ArgumentResolver) *Registry {
	return &Registry{
		resolvers: resolvers,
	}
}

// Resolve는 파라미터 타입에 맞는 Resolver를 찾아 값을 생성합니다.
func (r *Registry) Resolve(pm ParameterMeta, ctx core.ExecutionContext) (any, error) {
	for _, resolver := range r.resolvers {
		if resolver.Supports(pm) {
			return resolver.Resolve(ctx, pm)
		}
	}

	return nil, fmt.Errorf(
		"해당 파라미터 타입을 처리할 ArgumentResolver가 없습니다: %v",
		pm.Type,
	)
}
