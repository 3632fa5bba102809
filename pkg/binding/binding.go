/*
Package binding은 선언적 사전 조회(pre-action entity binding)의 공개 계약을 제공합니다.

App.Bind((*UserController)(nil), "user")는 요청 파라미터에서 식별자를 읽어
모델을 조회하고, 결과를 ExecutionContext에 "user"라는 이름으로 바인딩하는
Interceptor를 해당 컨트롤러의 라우트에 설치합니다. 조회 결과가 없으면
해당 요청은 404로 종료되고 Action은 호출되지 않습니다.
*/
package binding

import "github.com/NARUBROWN/tether/core"

// ResolveFunc는 엔티티를 직접 조회하는 사용자 정의 전략입니다.
// nil(또는 nil 포인터)을 반환하면 조회 실패(404)로 처리됩니다.
type ResolveFunc func(ctx core.ExecutionContext) (any, error)

/*
EntityFinder는 컨트롤러가 선택적으로 구현하는 커스텀 조회 계약입니다.

name은 바인딩 선언의 엔티티 이름(또는 UseFinder로 지정한 이름)입니다.
handled가 false이면 "이 이름은 내가 처리하지 않는다"는 의미이며,
기본 식별자 조회로 넘어갑니다.
*/
type EntityFinder interface {
	FindEntity(ctx core.ExecutionContext, name string) (entity any, handled bool, err error)
}

type strategyKind int

const (
	strategyDefault strategyKind = iota
	strategyFinder
	strategyFunc
)

// Strategy는 조회 전략을 표현하는 값 타입입니다.
// zero value는 기본 식별자 조회를 의미합니다.
type Strategy struct {
	kind   strategyKind
	finder string
	fn     ResolveFunc
}

// UseFinder는 컨트롤러의 EntityFinder에 전달할 이름을 지정합니다.
func UseFinder(name string) Strategy {
	return Strategy{kind: strategyFinder, finder: name}
}

// UseFunc는 조회 로직 전체를 함수로 대체합니다.
func UseFunc(fn ResolveFunc) Strategy {
	return Strategy{kind: strategyFunc, fn: fn}
}

func (s Strategy) IsDefault() bool {
	return s.kind == strategyDefault
}

func (s Strategy) FinderName() (string, bool) {
	return s.finder, s.kind == strategyFinder
}

func (s Strategy) Func() (ResolveFunc, bool) {
	return s.fn, s.kind == strategyFunc
}

/*
Options는 바인딩 선언의 설정입니다. 모든 필드는 선택 사항입니다.

Only / Except는 이 시스템이 해석하지 않고 라우트 범위 지정(어떤 Action에
훅을 설치할지)으로 그대로 전달됩니다. 둘을 동시에 지정할 수 없습니다.
*/
type Options struct {
	// 식별자를 읽을 요청 파라미터 key. 기본값은 엔티티 이름.
	// "id" 파라미터가 존재하면 항상 그쪽이 우선합니다.
	Param string

	// 조회 결과를 바인딩할 이름. 기본값은 엔티티 이름.
	Var string

	// 조회 전략. zero value는 기본 식별자 조회.
	Using Strategy

	// 인라인 조회 함수. 지정되면 다른 모든 전략보다 우선합니다.
	Resolve ResolveFunc

	// 훅을 설치할 Action 이름 목록 (비어 있으면 전체)
	Only []string
	// 훅 설치에서 제외할 Action 이름 목록
	Except []string
}

// Bound는 바인딩된 엔티티를 타입과 함께 꺼내는 헬퍼입니다.
func Bound[T any](ctx core.ExecutionContext, name string) (T, bool) {
	var zero T
	raw, ok := ctx.Get(name)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
