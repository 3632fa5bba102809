package hook

import "github.com/NARUBROWN/tether/core"

// PostExecutionHook은 Action 실행이 끝난 뒤 호출됩니다.
// err는 반환값 처리까지 포함한 실행 결과입니다.
type PostExecutionHook interface {
	AfterExecution(ctx core.ExecutionContext, results []any, err error)
}
