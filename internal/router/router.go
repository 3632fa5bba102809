package router

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/httperr"
)

// RouteSpec은 App 표면에서 수집되는 라우트 선언입니다.
type RouteSpec struct {
	Method  string
	Path    string
	Handler any
}

type Router interface {
	Route(ctx core.ExecutionContext) (core.HandlerMeta, error)
}

type entry struct {
	method   string
	segments []segment
	meta     core.HandlerMeta
}

type segment struct {
	literal string
	param   string // ":id" → "id"
}

// Table은 등록 순서를 유지하는 라우트 테이블입니다.
// 부트스트랩 이후에는 읽기 전용으로만 사용됩니다.
type Table struct {
	entries []*entry
}

func NewRouter() *Table {
	return &Table{}
}

func (t *Table) Register(method string, path string, meta core.HandlerMeta) error {
	if method == "" || path == "" {
		return fmt.Errorf("router: method/path가 빈 값일 수 없습니다 (%q %q)", method, path)
	}

	segments, err := parsePattern(path)
	if err != nil {
		return err
	}

	for _, e := range t.entries {
		if e.method == method && samePattern(e.segments, segments) {
			return fmt.Errorf("router: 중복 라우트입니다: %s %s", method, path)
		}
	}

	t.entries = append(t.entries, &entry{
		method:   method,
		segments: segments,
		meta:     meta,
	})
	return nil
}

/*
Route는 실행 대상을 결정하고, 매칭된 path 파라미터와 선언 순서의
파라미터 key 목록을 ExecutionContext 저장소에 넣습니다.

경로가 어떤 패턴과도 일치하지 않으면 404, 경로는 일치하지만 메서드가
다르면 405를 반환합니다.
*/
func (t *Table) Route(ctx core.ExecutionContext) (core.HandlerMeta, error) {
	parts := splitPath(ctx.Path())

	pathMatched := false
	for _, e := range t.entries {
		params, ok := match(e.segments, parts)
		if !ok {
			continue
		}
		pathMatched = true

		if e.method != ctx.Method() {
			continue
		}

		keys := make([]string, 0, len(params))
		for _, s := range e.segments {
			if s.param != "" {
				keys = append(keys, s.param)
			}
		}

		ctx.Set(core.StoreKeyParams, params)
		ctx.Set(core.StoreKeyPathKeys, keys)
		return e.meta, nil
	}

	if pathMatched {
		return core.HandlerMeta{}, httperr.MethodNotAllowed(
			fmt.Sprintf("허용되지 않은 메서드입니다: %s %s", ctx.Method(), ctx.Path()),
		)
	}
	return core.HandlerMeta{}, httperr.NotFound(
		fmt.Sprintf("등록되지 않은 경로입니다: %s", ctx.Path()),
	)
}

/*
Attach는 Interceptor를 ctrl 컨트롤러의 라우트 중 범위에 맞는 곳에
설치합니다. only가 비어 있지 않으면 해당 Action에만, except가 비어
있지 않으면 해당 Action을 제외한 전체에 설치됩니다. 둘 다 비어 있으면
컨트롤러의 전체 Action입니다.
*/
func (t *Table) Attach(it core.Interceptor, ctrl reflect.Type, only []string, except []string) {
	onlySet := toSet(only)
	exceptSet := toSet(except)

	for _, e := range t.entries {
		if e.meta.ControllerType != ctrl {
			continue
		}
		if len(onlySet) > 0 {
			if _, ok := onlySet[e.meta.Action]; !ok {
				continue
			}
		}
		if _, ok := exceptSet[e.meta.Action]; ok {
			continue
		}
		e.meta.Interceptors = append(e.meta.Interceptors, it)
	}
}

// ActionsOf는 ctrl 컨트롤러에 등록된 Action 이름 목록을 반환합니다.
func (t *Table) ActionsOf(ctrl reflect.Type) []string {
	actions := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if e.meta.ControllerType == ctrl {
			actions = append(actions, e.meta.Action)
		}
	}
	return actions
}

// ControllerTypes는 DI Container WarmUp 대상 목록을 중복 없이 반환합니다.
func (t *Table) ControllerTypes() []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(t.entries))
	types := make([]reflect.Type, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.meta.ControllerType]; ok {
			continue
		}
		seen[e.meta.ControllerType] = struct{}{}
		types = append(types, e.meta.ControllerType)
	}
	return types
}

/*
NewHandlerMeta는 메서드 표현식 (*UserController).GetUser 형태의 핸들러를
HandlerMeta로 변환합니다. 리시버 타입과 메서드를 역추적해 보관합니다.
*/
func NewHandlerMeta(handler any) (core.HandlerMeta, error) {
	v := reflect.ValueOf(handler)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return core.HandlerMeta{}, fmt.Errorf("router: 핸들러는 메서드 표현식이어야 합니다: %T", handler)
	}

	t := v.Type()
	if t.NumIn() < 1 {
		return core.HandlerMeta{}, fmt.Errorf("router: 핸들러에 리시버가 없습니다: %T", handler)
	}

	recv := t.In(0)
	if recv.Kind() != reflect.Pointer || recv.Elem().Kind() != reflect.Struct {
		return core.HandlerMeta{}, fmt.Errorf("router: 리시버는 구조체 포인터여야 합니다: %v", recv)
	}

	for i := 0; i < recv.NumMethod(); i++ {
		m := recv.Method(i)
		if m.Func.Pointer() == v.Pointer() {
			return core.HandlerMeta{
				ControllerType: recv,
				Method:         m,
				Action:         m.Name,
			}, nil
		}
	}

	return core.HandlerMeta{}, fmt.Errorf("router: 리시버 %v에서 핸들러 메서드를 찾을 수 없습니다", recv)
}

func parsePattern(pattern string) ([]segment, error) {
	parts := splitPath(pattern)
	segments := make([]segment, 0, len(parts))
	for _, p := range parts {
		if strings.HasPrefix(p, ":") {
			name := p[1:]
			if name == "" {
				return nil, fmt.Errorf("router: 이름 없는 path 파라미터입니다: %s", pattern)
			}
			segments = append(segments, segment{param: name})
			continue
		}
		segments = append(segments, segment{literal: p})
	}
	return segments, nil
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(segments []segment, parts []string) (map[string]string, bool) {
	if len(segments) != len(parts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, s := range segments {
		if s.param != "" {
			params[s.param] = parts[i]
			continue
		}
		if s.literal != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func samePattern(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if (a[i].param != "") != (b[i].param != "") {
			return false
		}
		if a[i].param == "" && a[i].literal != b[i].literal {
			return false
		}
	}
	return true
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
