package resolver

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/event/publish"
	"github.com/NARUBROWN/tether/pkg/header"
	"github.com/NARUBROWN/tether/pkg/path"
	"github.com/NARUBROWN/tether/pkg/query"
	"github.com/NARUBROWN/tether/pkg/ws"
)

type fakeEventBus struct{}

func (b *fakeEventBus) Publish(events ...publish.DomainEvent) {}
func (b *fakeEventBus) Drain() []publish.DomainEvent          { return nil }

type fakeCtx struct {
	method    string
	path      string
	params    map[string]string
	queries   map[string][]string
	headers   http.Header
	pathKeys  []string
	store     map[string]any
	bindValue any
	bindErr   error
}

func newFakeCtx() *fakeCtx {
	return &fakeCtx{
		method:   "GET",
		path:     "/",
		params:   map[string]string{},
		queries:  map[string][]string{},
		headers:  http.Header{},
		pathKeys: []string{},
		store:    map[string]any{},
	}
}

func (c *fakeCtx) Context() context.Context     { return context.Background() }
func (c *fakeCtx) EventBus() core.EventBus      { return &fakeEventBus{} }
func (c *fakeCtx) Method() string               { return c.method }
func (c *fakeCtx) Path() string                 { return c.path }
func (c *fakeCtx) Params() map[string]string    { return c.params }
func (c *fakeCtx) Header(name string) string    { return c.headers.Get(name) }
func (c *fakeCtx) PathKeys() []string           { return c.pathKeys }
func (c *fakeCtx) Queries() map[string][]string { return c.queries }
func (c *fakeCtx) Headers() http.Header         { return c.headers }
func (c *fakeCtx) Bind(out any) error {
	if c.bindErr != nil {
		return c.bindErr
	}
	if c.bindValue != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(c.bindValue))
	}
	return nil
}
func (c *fakeCtx) Set(key string, value any)  { c.store[key] = value }
func (c *fakeCtx) Get(key string) (any, bool) { v, ok := c.store[key]; return v, ok }

func TestContextResolver_InjectsExecutionContext(t *testing.T) {
	r := &ContextResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[core.ExecutionContext]()}
	if !r.Supports(pm) {
		t.Fatal("ExecutionContext 파라미터를 지원해야 합니다")
	}

	ctx := newFakeCtx()
	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("ContextResolver 실패: %v", err)
	}
	if val != core.ExecutionContext(ctx) {
		t.Fatal("ExecutionContext 자신이 주입되어야 합니다")
	}
}

func TestStdContextResolver_InjectsStdContext(t *testing.T) {
	r := &StdContextResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[context.Context]()}
	if !r.Supports(pm) {
		t.Fatal("context.Context 파라미터를 지원해야 합니다")
	}

	val, err := r.Resolve(newFakeCtx(), pm)
	if err != nil {
		t.Fatalf("StdContextResolver 실패: %v", err)
	}
	if _, ok := val.(context.Context); !ok {
		t.Fatalf("context.Context가 주입되어야 합니다: %T", val)
	}
}

func TestPathIntResolver_Success(t *testing.T) {
	r := &PathIntResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[path.Int](), PathKey: "id"}
	ctx := newFakeCtx()
	ctx.params["id"] = "42"

	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("PathIntResolver 실패: %v", err)
	}
	if val.(path.Int).Value != 42 {
		t.Fatalf("값이 잘못되었습니다: %v", val)
	}
}

func TestPathIntResolver_InvalidNumber(t *testing.T) {
	r := &PathIntResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[path.Int](), PathKey: "id"}
	ctx := newFakeCtx()
	ctx.params["id"] = "abc"

	if _, err := r.Resolve(ctx, pm); err == nil {
		t.Fatal("숫자가 아닌 path param은 에러여야 합니다")
	}
}

func TestPathStringResolver_Success(t *testing.T) {
	r := &PathStringResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[path.String](), PathKey: "slug"}
	ctx := newFakeCtx()
	ctx.params["slug"] = "hello-tether"

	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("PathStringResolver 실패: %v", err)
	}
	if val.(path.String).Value != "hello-tether" {
		t.Fatalf("값이 잘못되었습니다: %v", val)
	}
}

func TestPathStringResolver_MissingParam(t *testing.T) {
	r := &PathStringResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[path.String](), PathKey: "slug"}

	if _, err := r.Resolve(newFakeCtx(), pm); err == nil {
		t.Fatal("없는 path param은 에러여야 합니다")
	}
}

func TestQueryValuesResolver_WrapsQueries(t *testing.T) {
	r := &QueryValuesResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[query.Values]()}
	ctx := newFakeCtx()
	ctx.queries["page"] = []string{"3"}

	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("QueryValuesResolver 실패: %v", err)
	}
	q := val.(query.Values)
	if q.Int("page", 1) != 3 {
		t.Fatalf("쿼리 값이 잘못되었습니다: %v", q.Get("page"))
	}
	if q.Int("size", 20) != 20 {
		t.Fatal("없는 쿼리는 기본값을 반환해야 합니다")
	}
}

func TestHeaderResolver_UsesHeaderCarrier(t *testing.T) {
	r := &HeaderResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[header.Values]()}
	ctx := newFakeCtx()
	ctx.headers.Set("X-Request-Id", "abc")

	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("HeaderResolver 실패: %v", err)
	}
	h := val.(header.Values)
	if h.Get("X-Request-Id") != "abc" {
		t.Fatalf("헤더 값이 잘못되었습니다: %q", h.Get("X-Request-Id"))
	}
}

type headerlessCtx struct{ *fakeCtx }

// Headers를 제공하지 않는 Transport를 흉내 낸다.
func (c headerlessCtx) Headers() {}

func TestHeaderResolver_EmptyViewWithoutCarrier(t *testing.T) {
	r := &HeaderResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[header.Values]()}

	val, err := r.Resolve(headerlessCtx{newFakeCtx()}, pm)
	if err != nil {
		t.Fatalf("HeaderResolver 실패: %v", err)
	}
	h := val.(header.Values)
	if h.Has("X-Anything") {
		t.Fatal("헤더 없는 Transport는 빈 뷰를 받아야 합니다")
	}
}

type dtoSample struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestDTOResolver_SupportsOnlyPlainStructs(t *testing.T) {
	r := &DTOResolver{}

	if !r.Supports(ParameterMeta{Type: reflect.TypeOf(dtoSample{})}) {
		t.Fatal("일반 struct DTO를 지원해야 합니다")
	}
	if r.Supports(ParameterMeta{Type: reflect.TypeFor[path.Int]()}) {
		t.Fatal("예약 타입은 지원하면 안 됩니다")
	}
	if r.Supports(ParameterMeta{Type: reflect.TypeFor[query.Values]()}) {
		t.Fatal("예약 타입은 지원하면 안 됩니다")
	}
	if r.Supports(ParameterMeta{Type: reflect.TypeOf("")}) {
		t.Fatal("struct가 아닌 타입은 지원하면 안 됩니다")
	}
}

func TestDTOResolver_BindsPayload(t *testing.T) {
	r := &DTOResolver{}
	pm := ParameterMeta{Type: reflect.TypeOf(dtoSample{})}
	ctx := newFakeCtx()
	ctx.bindValue = dtoSample{Name: "abc", Age: 10}

	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("DTOResolver Resolve 실패: %v", err)
	}
	dto := val.(dtoSample)
	if dto.Name != "abc" || dto.Age != 10 {
		t.Fatalf("바인딩 결과가 잘못되었습니다: %+v", dto)
	}
}

func TestDTOResolver_BindErrorPropagates(t *testing.T) {
	r := &DTOResolver{}
	pm := ParameterMeta{Type: reflect.TypeOf(dtoSample{})}
	ctx := newFakeCtx()
	ctx.bindErr = errors.New("bind fail")

	if _, err := r.Resolve(ctx, pm); err == nil {
		t.Fatal("Bind 에러가 전파되어야 합니다")
	}
}

func TestConnIDResolver_RequiresWebSocketExecution(t *testing.T) {
	r := &ConnIDResolver{}
	pm := ParameterMeta{Type: reflect.TypeFor[ws.ConnID]()}

	if _, err := r.Resolve(newFakeCtx(), pm); err == nil {
		t.Fatal("WebSocket 실행이 아니면 에러여야 합니다")
	}

	ctx := newFakeCtx()
	ctx.Set(core.StoreKeyConnID, ws.ConnID("conn-1"))
	val, err := r.Resolve(ctx, pm)
	if err != nil {
		t.Fatalf("ConnIDResolver 실패: %v", err)
	}
	if val.(ws.ConnID) != "conn-1" {
		t.Fatalf("ConnID 값이 잘못되었습니다: %v", val)
	}
}
