package resolver

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/ws"
)

// ConnIDResolver는 WebSocket 연결 식별자 파라미터를 처리합니다.
type ConnIDResolver struct{}

func (r *ConnIDResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[ws.ConnID]()
}

func (r *ConnIDResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	raw, ok := ctx.Get(core.StoreKeyConnID)
	if !ok {
		return nil, fmt.Errorf("WebSocket 실행이 아니므로 ConnID를 주입할 수 없습니다")
	}
	id, ok := raw.(ws.ConnID)
	if !ok {
		return nil, fmt.Errorf("ConnID 타입이 올바르지 않습니다: %T", raw)
	}
	return id, nil
}
