package binding

import (
	"reflect"

	pub "github.com/NARUBROWN/tether/pkg/binding"
)

/*
Declaration은 부트스트랩 시점에 확정되는 바인딩 선언입니다.
생성 이후 변경되지 않으며, 여러 요청이 동시에 읽어도 안전합니다.
*/
type Declaration struct {
	// 선언이 속한 컨트롤러 타입 (구조체 포인터)
	Controller reflect.Type

	// 엔티티 심볼 이름 (모델 Registry의 key)
	Entity string

	// 식별자를 읽을 파라미터 key ("id"가 항상 우선)
	Param string

	// 조회 결과를 바인딩할 이름
	Var string

	// 조회 전략 (zero value = 기본 식별자 조회)
	Using pub.Strategy

	// 인라인 조회 함수 (최우선)
	Resolve pub.ResolveFunc

	// 훅 범위 지정 (해석하지 않고 라우트 설치 단계로 전달)
	Only   []string
	Except []string
}

// NewDeclaration은 옵션의 기본값을 채워 선언을 확정합니다.
func NewDeclaration(controller reflect.Type, entity string, opts pub.Options) Declaration {
	decl := Declaration{
		Controller: controller,
		Entity:     entity,
		Param:      opts.Param,
		Var:        opts.Var,
		Using:      opts.Using,
		Resolve:    opts.Resolve,
		Only:       append([]string(nil), opts.Only...),
		Except:     append([]string(nil), opts.Except...),
	}

	if decl.Param == "" {
		decl.Param = entity
	}
	if decl.Var == "" {
		decl.Var = entity
	}

	return decl
}

// FinderName은 EntityFinder에 전달할 이름입니다.
// UseFinder로 지정하지 않았다면 엔티티 이름을 그대로 사용합니다.
func (d Declaration) FinderName() string {
	if name, ok := d.Using.FinderName(); ok {
		return name
	}
	return d.Entity
}

// NeedsSource는 이 선언이 기본 식별자 조회에 도달할 수 있는지를 나타냅니다.
// 도달할 수 있다면 모델 Registry에 해당 엔티티가 등록되어 있어야 합니다.
func (d Declaration) NeedsSource() bool {
	if d.Resolve != nil {
		return false
	}
	if _, ok := d.Using.Func(); ok {
		return false
	}
	return true
}
