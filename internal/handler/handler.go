package handler

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

// ReturnValueHandler는 컨트롤러 반환값 하나를 응답으로 변환합니다.
type ReturnValueHandler interface {
	Supports(returnType reflect.Type) bool
	Handle(value any, ctx core.ExecutionContext) error
}

func responseWriter(ctx core.ExecutionContext) (core.ResponseWriter, error) {
	raw, ok := ctx.Get(core.StoreKeyResponseWriter)
	if !ok {
		return nil, fmt.Errorf("ExecutionContext 안에서 ResponseWriter를 찾을 수 없습니다")
	}

	rw, ok := raw.(core.ResponseWriter)
	if !ok {
		return nil, fmt.Errorf("ResponseWriter 타입이 올바르지 않습니다: %T", raw)
	}
	return rw, nil
}
