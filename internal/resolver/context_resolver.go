package resolver

import (
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

// ContextResolver는 core.ExecutionContext 타입의 파라미터를 처리합니다.
type ContextResolver struct{}

func (r *ContextResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[core.ExecutionContext]()
}

func (r *ContextResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	return ctx, nil
}
