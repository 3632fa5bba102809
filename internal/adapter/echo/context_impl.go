package echo

import (
	"context"
	"maps"
	"net/http"

	"github.com/NARUBROWN/tether/core"
	eventpublish "github.com/NARUBROWN/tether/internal/event/publish"
	"github.com/labstack/echo/v4"
)

type echoContext struct {
	echo     echo.Context
	reqCtx   context.Context
	store    map[string]any
	eventBus core.EventBus
}

func NewContext(c echo.Context) core.ExecutionContext {
	return &echoContext{
		echo:     c,
		reqCtx:   c.Request().Context(), // 요청시 생성되는 Context
		store:    make(map[string]any),
		eventBus: eventpublish.NewBus(),
	}
}

func (e *echoContext) Context() context.Context {
	return e.reqCtx
}

func (e *echoContext) EventBus() core.EventBus {
	return e.eventBus
}

func (e *echoContext) Method() string {
	return e.echo.Request().Method
}

func (e *echoContext) Path() string {
	return e.echo.Request().URL.Path
}

func (e *echoContext) Params() map[string]string {
	if raw, ok := e.store[core.StoreKeyParams]; ok {
		if m, ok := raw.(map[string]string); ok {
			// 변조 방지를 위해 얕은 복사본을 반환
			copyMap := make(map[string]string, len(m))
			maps.Copy(copyMap, m)
			return copyMap
		}
	}

	// Router 실행 전이면 Echo가 파싱한 파라미터를 그대로 사용
	names := e.echo.ParamNames()
	values := e.echo.ParamValues()

	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}

func (e *echoContext) Header(name string) string {
	return e.echo.Request().Header.Get(name)
}

// Headers return a map of all headers in the request.
func (e *echoContext) Headers() http.Header {
	return e.echo.Request().Header
}

func (e *echoContext) PathKeys() []string {
	if v, ok := e.store[core.StoreKeyPathKeys]; ok {
		if keys, ok := v.([]string); ok {
			return keys
		}
	}
	return nil
}

func (e *echoContext) Queries() map[string][]string {
	return e.echo.QueryParams()
}

func (e *echoContext) Bind(out any) error {
	return e.echo.Bind(out)
}

func (e *echoContext) Set(key string, value any) {
	e.store[key] = value
}

func (e *echoContext) Get(key string) (any, bool) {
	value, ok := e.store[key]
	return value, ok
}
