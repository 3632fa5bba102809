package resolver

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/header"
	"github.com/NARUBROWN/tether/pkg/path"
	"github.com/NARUBROWN/tether/pkg/query"
)

// DTOResolver는 나머지 구조체 파라미터를 body(또는 페이로드) 바인딩으로 처리합니다.
// 프레임워크 예약 타입은 전용 Resolver가 담당하므로 제외합니다.
type DTOResolver struct{}

var reservedTypes = []reflect.Type{
	reflect.TypeFor[path.Int](),
	reflect.TypeFor[path.String](),
	reflect.TypeFor[query.Values](),
	reflect.TypeFor[header.Values](),
}

func (r *DTOResolver) Supports(pm ParameterMeta) bool {
	if pm.Type.Kind() != reflect.Struct {
		return false
	}
	for _, reserved := range reservedTypes {
		if pm.Type == reserved {
			return false
		}
	}
	return true
}

func (r *DTOResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	// 빈 DTO 생성
	valuePtr := reflect.New(pm.Type)

	if err := ctx.Bind(valuePtr.Interface()); err != nil {
		return nil, fmt.Errorf(
			"DTO 바인딩 실패 (%s): %w",
			pm.Type.Name(),
			err,
		)
	}

	// 포인터가 아니라 값으로 전달
	return valuePtr.Elem().Interface(), nil
}
