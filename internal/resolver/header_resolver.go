package resolver

import (
	"net/http"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/header"
)

// headerCarrier는 전체 헤더 뷰를 제공하는 Transport가 구현합니다.
type headerCarrier interface {
	Headers() http.Header
}

type HeaderResolver struct{}

func (hr *HeaderResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[header.Values]()
}

func (hr *HeaderResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	if hc, ok := ctx.(headerCarrier); ok {
		return header.NewValues(hc.Headers()), nil
	}
	// 헤더가 없는 Transport(Consumer, WS)는 빈 뷰를 전달한다.
	return header.NewValues(http.Header{}), nil
}
