package resolver

import (
	"context"
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

// StdContextResolver는 표준 context.Context 파라미터를 처리합니다.
// Consumer / WebSocket 핸들러처럼 HTTP 표면이 필요 없는 곳에서 사용됩니다.
type StdContextResolver struct{}

func (r *StdContextResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[context.Context]()
}

func (r *StdContextResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	return ctx.Context(), nil
}
