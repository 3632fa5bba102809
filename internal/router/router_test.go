package router

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/event/publish"
	"github.com/NARUBROWN/tether/pkg/httperr"
)

type testEventBus struct{}

func (b *testEventBus) Publish(events ...publish.DomainEvent) {}
func (b *testEventBus) Drain() []publish.DomainEvent          { return nil }

type testExecutionContext struct {
	method   string
	path     string
	params   map[string]string
	pathKeys []string
	queries  map[string][]string
	headers  map[string]string
	store    map[string]any
}

func newTestExecutionContext(method string, path string) *testExecutionContext {
	return &testExecutionContext{
		method:   method,
		path:     path,
		params:   map[string]string{},
		queries:  map[string][]string{},
		headers:  map[string]string{},
		store:    map[string]any{},
		pathKeys: []string{},
	}
}

func (c *testExecutionContext) Context() context.Context     { return context.Background() }
func (c *testExecutionContext) EventBus() core.EventBus      { return &testEventBus{} }
func (c *testExecutionContext) Method() string               { return c.method }
func (c *testExecutionContext) Path() string                 { return c.path }
func (c *testExecutionContext) Params() map[string]string    { return c.params }
func (c *testExecutionContext) Header(name string) string    { return c.headers[name] }
func (c *testExecutionContext) PathKeys() []string           { return c.pathKeys }
func (c *testExecutionContext) Queries() map[string][]string { return c.queries }
func (c *testExecutionContext) Bind(out any) error           { return nil }
func (c *testExecutionContext) Set(key string, value any)    { c.store[key] = value }
func (c *testExecutionContext) Get(key string) (any, bool)   { v, ok := c.store[key]; return v, ok }

type testController struct{}

func (c *testController) List() string   { return "list" }
func (c *testController) Create() string { return "create" }

type anotherController struct{}

func (c *anotherController) Another() string { return "another" }

type testInterceptor struct{}

func (i *testInterceptor) PreHandle(ctx core.ExecutionContext, meta core.HandlerMeta) error {
	return nil
}
func (i *testInterceptor) PostHandle(ctx core.ExecutionContext, meta core.HandlerMeta) {}
func (i *testInterceptor) AfterCompletion(ctx core.ExecutionContext, meta core.HandlerMeta, err error) {
}

func testHandlerMeta(t *testing.T, method string) core.HandlerMeta {
	t.Helper()
	ctrlType := reflect.TypeOf(&testController{})
	m, ok := ctrlType.MethodByName(method)
	if !ok {
		t.Fatalf("메서드가 없습니다: %s", method)
	}
	return core.HandlerMeta{ControllerType: ctrlType, Method: m, Action: m.Name}
}

func anotherHandlerMeta(t *testing.T) core.HandlerMeta {
	t.Helper()
	ctrlType := reflect.TypeOf(&anotherController{})
	m, ok := ctrlType.MethodByName("Another")
	if !ok {
		t.Fatal("메서드가 없습니다: Another")
	}
	return core.HandlerMeta{ControllerType: ctrlType, Method: m, Action: m.Name}
}

func mustRegister(t *testing.T, r *Table, method, path string, meta core.HandlerMeta) {
	t.Helper()
	if err := r.Register(method, path, meta); err != nil {
		t.Fatalf("라우트 등록에 실패했습니다: %v", err)
	}
}

func TestRouter_RouteMatchesPathAndInjectsParams(t *testing.T) {
	r := NewRouter()
	meta := testHandlerMeta(t, "List")
	mustRegister(t, r, "GET", "/users/:id", meta)

	ctx := newTestExecutionContext("GET", "/users/42")
	got, err := r.Route(ctx)
	if err != nil {
		t.Fatalf("라우팅에 실패했습니다: %v", err)
	}
	if got.ControllerType != meta.ControllerType {
		t.Fatal("예상한 컨트롤러 타입과 일치하지 않습니다")
	}
	if got.Method.Name != meta.Method.Name {
		t.Fatalf("예상한 메서드와 일치하지 않습니다: %s", got.Method.Name)
	}

	paramsAny, ok := ctx.Get(core.StoreKeyParams)
	if !ok {
		t.Fatal("path 파라미터가 컨텍스트에 주입되지 않았습니다")
	}
	params, ok := paramsAny.(map[string]string)
	if !ok {
		t.Fatalf("파라미터 타입이 잘못되었습니다: %T", paramsAny)
	}
	if params["id"] != "42" {
		t.Fatalf("path 파라미터 id가 잘못되었습니다: %q", params["id"])
	}

	keysAny, ok := ctx.Get(core.StoreKeyPathKeys)
	if !ok {
		t.Fatal("path key 목록이 컨텍스트에 주입되지 않았습니다")
	}
	keys, ok := keysAny.([]string)
	if !ok {
		t.Fatalf("path key 타입이 잘못되었습니다: %T", keysAny)
	}
	if len(keys) != 1 || keys[0] != "id" {
		t.Fatalf("path key 값이 잘못되었습니다: %v", keys)
	}
}

func TestRouter_MultipleParamsKeepDeclarationOrder(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/team/:teamId/user/:userId", testHandlerMeta(t, "List"))

	ctx := newTestExecutionContext("GET", "/team/alpha/user/7")
	if _, err := r.Route(ctx); err != nil {
		t.Fatalf("라우팅에 실패했습니다: %v", err)
	}

	paramsAny, _ := ctx.Get(core.StoreKeyParams)
	params := paramsAny.(map[string]string)
	if params["teamId"] != "alpha" || params["userId"] != "7" {
		t.Fatalf("파라미터 매핑이 잘못되었습니다: %v", params)
	}

	keysAny, _ := ctx.Get(core.StoreKeyPathKeys)
	keys := keysAny.([]string)
	if len(keys) != 2 || keys[0] != "teamId" || keys[1] != "userId" {
		t.Fatalf("path key 순서가 잘못되었습니다: %v", keys)
	}
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/users/:id", testHandlerMeta(t, "List"))

	_, err := r.Route(newTestExecutionContext("GET", "/teams/1"))
	var httpErr *httperr.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HTTPError가 예상됐지만 실제: %v", err)
	}
	if httpErr.Status != 404 {
		t.Fatalf("등록되지 않은 경로는 404여야 합니다: %d", httpErr.Status)
	}
}

func TestRouter_WrongMethodIs405(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "POST", "/users/:id", testHandlerMeta(t, "Create"))

	_, err := r.Route(newTestExecutionContext("GET", "/users/42"))
	var httpErr *httperr.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HTTPError가 예상됐지만 실제: %v", err)
	}
	if httpErr.Status != 405 {
		t.Fatalf("메서드 불일치는 405여야 합니다: %d", httpErr.Status)
	}
}

func TestRouter_DuplicateRouteIsRejected(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/users/:id", testHandlerMeta(t, "List"))

	// 파라미터 이름이 달라도 같은 모양이면 중복이다.
	if err := r.Register("GET", "/users/:userId", testHandlerMeta(t, "Create")); err == nil {
		t.Fatal("같은 모양의 라우트는 거부되어야 합니다")
	}
	if err := r.Register("POST", "/users/:id", testHandlerMeta(t, "Create")); err != nil {
		t.Fatalf("메서드가 다르면 등록되어야 합니다: %v", err)
	}
}

func TestRouter_AttachScopesToControllerAndActions(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/users", testHandlerMeta(t, "List"))
	mustRegister(t, r, "POST", "/users", testHandlerMeta(t, "Create"))
	mustRegister(t, r, "GET", "/another", anotherHandlerMeta(t))

	ctrl := reflect.TypeOf(&testController{})
	it := &testInterceptor{}
	r.Attach(it, ctrl, []string{"List"}, nil)

	for _, e := range r.entries {
		installed := len(e.meta.Interceptors) > 0
		if e.meta.Action == "List" && e.meta.ControllerType == ctrl {
			if !installed {
				t.Fatal("Only 범위의 Action에 훅이 설치되어야 합니다")
			}
			continue
		}
		if installed {
			t.Fatalf("범위 밖 Action에 훅이 설치되면 안 됩니다: %s", e.meta.Action)
		}
	}
}

func TestRouter_AttachExceptSkipsNamedActions(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/users", testHandlerMeta(t, "List"))
	mustRegister(t, r, "POST", "/users", testHandlerMeta(t, "Create"))

	ctrl := reflect.TypeOf(&testController{})
	r.Attach(&testInterceptor{}, ctrl, nil, []string{"Create"})

	for _, e := range r.entries {
		installed := len(e.meta.Interceptors) > 0
		if e.meta.Action == "Create" && installed {
			t.Fatal("Except로 제외한 Action에 훅이 설치되면 안 됩니다")
		}
		if e.meta.Action == "List" && !installed {
			t.Fatal("제외되지 않은 Action에는 훅이 설치되어야 합니다")
		}
	}
}

func TestRouter_ActionsOfReturnsControllerActions(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/users", testHandlerMeta(t, "List"))
	mustRegister(t, r, "POST", "/users", testHandlerMeta(t, "Create"))
	mustRegister(t, r, "GET", "/another", anotherHandlerMeta(t))

	actions := r.ActionsOf(reflect.TypeOf(&testController{}))
	if len(actions) != 2 {
		t.Fatalf("컨트롤러의 Action은 2개여야 합니다: %v", actions)
	}
	if actions[0] != "List" || actions[1] != "Create" {
		t.Fatalf("Action 목록이 잘못되었습니다: %v", actions)
	}

	if got := r.ActionsOf(reflect.TypeOf(&testExecutionContext{})); len(got) != 0 {
		t.Fatalf("라우트 없는 타입은 빈 목록이어야 합니다: %v", got)
	}
}

func TestRouter_ControllerTypesDeduplicates(t *testing.T) {
	r := NewRouter()
	mustRegister(t, r, "GET", "/one", testHandlerMeta(t, "List"))
	mustRegister(t, r, "GET", "/two", testHandlerMeta(t, "Create"))
	mustRegister(t, r, "GET", "/third", anotherHandlerMeta(t))

	types := r.ControllerTypes()
	if len(types) != 2 {
		t.Fatalf("중복 제거 후 타입은 2개여야 합니다: %d", len(types))
	}
}

func TestNewHandlerMeta_ResolvesMethodExpression(t *testing.T) {
	meta, err := NewHandlerMeta((*testController).Create)
	if err != nil {
		t.Fatalf("메서드 표현식 해석에 실패했습니다: %v", err)
	}
	if meta.ControllerType != reflect.TypeOf(&testController{}) {
		t.Fatalf("컨트롤러 타입이 잘못되었습니다: %v", meta.ControllerType)
	}
	if meta.Action != "Create" {
		t.Fatalf("Action 이름이 잘못되었습니다: %q", meta.Action)
	}
}

func TestNewHandlerMeta_RejectsNonMethodValues(t *testing.T) {
	if _, err := NewHandlerMeta("not a func"); err == nil {
		t.Fatal("함수가 아닌 값은 거부되어야 합니다")
	}
	if _, err := NewHandlerMeta(func() {}); err == nil {
		t.Fatal("리시버 없는 함수는 거부되어야 합니다")
	}
}

func TestSplitPath(t *testing.T) {
	if got := splitPath("/"); len(got) != 0 {
		t.Fatalf("루트 경로는 빈 세그먼트를 반환해야 합니다: %v", got)
	}
	if got := splitPath("/users/42/"); len(got) != 2 || got[0] != "users" || got[1] != "42" {
		t.Fatalf("슬래시 정리 로직이 잘못되었습니다: %v", got)
	}
	if got := splitPath("users/42"); len(got) != 2 || got[1] != "42" {
		t.Fatalf("앞 슬래시 없는 경로 처리 결과가 잘못되었습니다: %v", got)
	}
}
