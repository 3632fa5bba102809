package binding

import (
	"fmt"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	pub "github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/model"
)

/*
Registrar는 바인딩 선언을 모아 두었다가 부트스트랩 단계에서 검증하고,
선언마다 하나의 사전 실행 Interceptor를 생성합니다.

검증은 요청을 받기 전에 끝납니다. 잘못된 선언(등록되지 않은 모델,
존재하지 않는 Action 범위 등)은 애플리케이션 기동 실패로 이어집니다.
*/
type Registrar struct {
	models *model.Registry
	decls  []Declaration
}

func NewRegistrar(models *model.Registry) *Registrar {
	if models == nil {
		panic("binding: 모델 Registry는 nil일 수 없습니다")
	}
	return &Registrar{models: models}
}

// Add는 컨트롤러 하나에 대한 바인딩 선언을 추가합니다.
// controller는 (*UserController)(nil)처럼 타입만 전달하면 됩니다.
func (r *Registrar) Add(controller any, entity string, opts pub.Options) error {
	ctrlType := reflect.TypeOf(controller)
	if ctrlType == nil || ctrlType.Kind() != reflect.Pointer || ctrlType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("binding: 컨트롤러는 구조체 포인터여야 합니다: %T", controller)
	}

	r.decls = append(r.decls, NewDeclaration(ctrlType, entity, opts))
	return nil
}

func (r *Registrar) Declarations() []Declaration {
	cpy := make([]Declaration, len(r.decls))
	copy(cpy, r.decls)
	return cpy
}

/*
Build는 모든 선언을 검증하고 선언 순서대로 Interceptor를 반환합니다.
actionsOf는 컨트롤러 타입에 등록된 전체 Action 이름 목록이며
Only/Except 검증에 사용됩니다.
*/
func (r *Registrar) Build(container core.Container, actionsOf func(reflect.Type) []string) ([]*Interceptor, error) {
	interceptors := make([]*Interceptor, 0, len(r.decls))
	for _, decl := range r.decls {
		if err := validate(decl, actionsOf(decl.Controller)); err != nil {
			return nil, err
		}

		var source model.Source
		if decl.NeedsSource() {
			// 설정 시점 실패: 모델 이름을 해석할 수 없으면 기동을 중단한다.
			s, err := r.models.Lookup(decl.Entity)
			if err != nil {
				return nil, fmt.Errorf("binding: 선언 '%s' 검증 실패: %w", decl.Entity, err)
			}
			source = s
		}

		interceptors = append(interceptors, NewInterceptor(decl, source, container))
	}

	return interceptors, nil
}

func validate(decl Declaration, actions []string) error {
	if decl.Entity == "" {
		return fmt.Errorf("binding: 엔티티 이름이 빈 값일 수 없습니다")
	}
	if len(actions) == 0 {
		return fmt.Errorf("binding: 컨트롤러 %v에 등록된 라우트가 없습니다", decl.Controller)
	}
	if len(decl.Only) > 0 && len(decl.Except) > 0 {
		return fmt.Errorf("binding: 선언 '%s'에 Only와 Except를 동시에 지정할 수 없습니다", decl.Entity)
	}

	known := make(map[string]struct{}, len(actions))
	for _, action := range actions {
		known[action] = struct{}{}
	}
	for _, action := range decl.Only {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("binding: 선언 '%s'의 Only에 등록되지 않은 Action이 있습니다: %s", decl.Entity, action)
		}
	}
	for _, action := range decl.Except {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("binding: 선언 '%s'의 Except에 등록되지 않은 Action이 있습니다: %s", decl.Entity, action)
		}
	}
	return nil
}
