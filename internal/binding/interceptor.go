package binding

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	pub "github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/httperr"
	"github.com/NARUBROWN/tether/pkg/model"
)

/*
Interceptor는 선언 하나에 대한 사전 실행 훅입니다.

조회 전략 우선순위는 다음과 같고, 이 순서를 바꾸는 것은 의도적인
호환성 파괴로 취급합니다.

 1. 선언의 Resolve 인라인 함수
 2. UseFunc 전략
 3. 컨트롤러의 EntityFinder (handled=true인 경우)
 4. 기본 식별자 조회 ("id" 파라미터 우선, 없으면 Param key)

조회 결과가 있으면 Var 이름으로 ExecutionContext에 바인딩하고,
없으면 404를 반환해 Action 실행을 중단합니다.
*/
type Interceptor struct {
	decl      Declaration
	source    model.Source
	container core.Container
}

func NewInterceptor(decl Declaration, source model.Source, container core.Container) *Interceptor {
	return &Interceptor{
		decl:      decl,
		source:    source,
		container: container,
	}
}

func (i *Interceptor) Declaration() Declaration {
	return i.decl
}

func (i *Interceptor) PreHandle(ctx core.ExecutionContext, meta core.HandlerMeta) error {
	candidate, err := i.lookup(ctx, meta)
	if err != nil {
		// 사용자 정의 조회의 에러는 그대로 전파한다.
		return err
	}

	if !isPresent(candidate) {
		return httperr.NotFound(fmt.Sprintf("%s을(를) 찾을 수 없습니다", i.decl.Entity))
	}

	ctx.Set(i.decl.Var, candidate)
	return nil
}

func (i *Interceptor) PostHandle(ctx core.ExecutionContext, meta core.HandlerMeta) {}

func (i *Interceptor) AfterCompletion(ctx core.ExecutionContext, meta core.HandlerMeta, err error) {
}

func (i *Interceptor) lookup(ctx core.ExecutionContext, meta core.HandlerMeta) (any, error) {
	// 1. 인라인 Resolve
	if i.decl.Resolve != nil {
		return i.decl.Resolve(ctx)
	}

	// 2. UseFunc 전략
	if fn, ok := i.decl.Using.Func(); ok {
		return fn(ctx)
	}

	// 3. 컨트롤러의 EntityFinder
	finder, err := i.finder(meta)
	if err != nil {
		return nil, err
	}
	if finder != nil {
		entity, handled, err := finder.FindEntity(ctx, i.decl.FinderName())
		if err != nil {
			return nil, err
		}
		if handled {
			return entity, nil
		}
	}

	// 4. 기본 식별자 조회
	return i.findByID(ctx)
}

func (i *Interceptor) finder(meta core.HandlerMeta) (pub.EntityFinder, error) {
	if meta.ControllerType == nil {
		return nil, nil
	}

	finderType := reflect.TypeFor[pub.EntityFinder]()
	if !meta.ControllerType.Implements(finderType) {
		return nil, nil
	}

	instance, err := i.container.Resolve(meta.ControllerType)
	if err != nil {
		return nil, fmt.Errorf("binding: 컨트롤러 Resolve 실패 (%v): %w", meta.ControllerType, err)
	}

	finder, ok := instance.(pub.EntityFinder)
	if !ok {
		return nil, nil
	}
	return finder, nil
}

func (i *Interceptor) findByID(ctx core.ExecutionContext) (any, error) {
	params := ctx.Params()

	// "id"가 존재하면 설정된 Param key보다 항상 우선한다.
	id := params["id"]
	if id == "" {
		id = params[i.decl.Param]
	}
	if id == "" {
		// 식별자 자체가 없으면 조회 실패로 처리한다.
		return nil, nil
	}

	entity, found, err := i.source.FindByID(ctx.Context(), id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return entity, nil
}

// isPresent는 nil 인터페이스와 nil 포인터/맵/슬라이스를 모두 부재로 판정합니다.
func isPresent(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
