package resolver

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/path"
)

type PathIntResolver struct{}

func (r *PathIntResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeFor[path.Int]()
}

func (r *PathIntResolver) Resolve(ctx core.ExecutionContext, pm ParameterMeta) (any, error) {
	raw, ok := ctx.Params()[pm.PathKey]
	if !ok {
		return nil, fmt.Errorf("path param을 찾을 수 없습니다: %s", pm.PathKey)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(
			"유효하지 않은 path param %s: %v",
			pm.PathKey,
			err,
		)
	}

	return path.Int{Value: value}, nil
}
