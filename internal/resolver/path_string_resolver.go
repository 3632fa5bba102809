package resolver

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/path"
)

type PathStringResolver struct{}

func (r *PathStringResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[path.String]()
}

func (r *PathStringResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	raw, ok := ctx.Params()[pm.PathKey]
	if !ok {
		return nil, fmt.Errorf("path param을 찾을 수 없습니다: %s", pm.PathKey)
	}
	return path.String{Value: raw}, nil
}
