package pipeline

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/internal/event/hook"
	"github.com/NARUBROWN/tether/internal/handler"
	"github.com/NARUBROWN/tether/internal/invoker"
	"github.com/NARUBROWN/tether/internal/resolver"
	"github.com/NARUBROWN/tether/internal/router"
	"github.com/NARUBROWN/tether/pkg/path"
)

type Pipeline struct {
	router            router.Router
	interceptors      []core.Interceptor
	argumentResolvers []resolver.ArgumentResolver
	returnHandlers    []handler.ReturnValueHandler
	invoker           *invoker.Invoker
	postHooks         []hook.PostExecutionHook
}

func NewPipeline(router router.Router, invoker *invoker.Invoker) *Pipeline {
	return &Pipeline{
		router:  router,
		invoker: invoker,
	}
}

func (p *Pipeline) AddInterceptor(its ...core.Interceptor) {
	p.interceptors = append(p.interceptors, its...)
}

func (p *Pipeline) AddArgumentResolver(resolvers ...resolver.ArgumentResolver) {
	p.argumentResolvers = append(p.argumentResolvers, resolvers...)
}

func (p *Pipeline) AddReturnValueHandler(handlers ...handler.ReturnValueHandler) {
	p.returnHandlers = append(p.returnHandlers, handlers...)
}

func (p *Pipeline) AddPostHook(hooks ...hook.PostExecutionHook) {
	p.postHooks = append(p.postHooks, hooks...)
}

// Execute는 하나의 요청 실행 전체를 소유합니다.
func (p *Pipeline) Execute(ctx core.ExecutionContext) (finalErr error) {
	defer func() {
		if finalErr != nil {
			p.handleExecutionError(ctx, finalErr)
		}
	}()

	// Router가 실행 대상을 결정
	meta, err := p.router.Route(ctx)
	if err != nil {
		return err
	}

	interceptors := p.composeInterceptors(meta)

	// Interceptor AfterCompletion은 무조건 보장
	defer func() {
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptors[i].AfterCompletion(ctx, meta, finalErr)
		}
	}()

	/*
		Interceptor PreHandle은 Argument Resolver보다 먼저 실행한다.
		사전 훅이 요청을 404 등으로 종료하는 경우 파라미터 해석 비용과
		해석 오류가 훅 결과를 가리는 일을 피하기 위함이다.
	*/
	for _, it := range interceptors {
		if err := it.PreHandle(ctx, meta); err != nil {
			if errors.Is(err, core.ErrAbortPipeline) {
				// Interceptor가 의도적으로 요청을 종료함 (응답은 이미 작성됨)
				return nil
			}
			return err
		}
	}

	paramMetas, err := buildParameterMeta(meta.Method, ctx)
	if err != nil {
		return err
	}

	// Argument Resolver 체인 실행
	args, err := p.resolveArguments(ctx, paramMetas)
	if err != nil {
		return err
	}

	// Controller Method 호출
	results, err := p.invoker.Invoke(
		meta.ControllerType,
		meta.Method,
		args,
	)
	if err != nil {
		return err
	}

	// ReturnValueHandler 처리
	returnError := p.handleReturn(ctx, meta, results)

	// PostHook 실행 (이벤트 방출 등)
	for _, h := range p.postHooks {
		h.AfterExecution(ctx, results, returnError)
	}

	if returnError != nil {
		return returnError
	}

	// Interceptor postHandle (역순)
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptors[i].PostHandle(ctx, meta)
	}

	return nil
}

func (p *Pipeline) composeInterceptors(meta core.HandlerMeta) []core.Interceptor {
	total := make([]core.Interceptor, 0, len(p.interceptors)+len(meta.Interceptors))

	/*
		실행 순서 정책
		1. 전역 Interceptor를 먼저 실행
		2. 이후 라우트(Handler)에 바인딩된 Interceptor를 실행
		3. PostHandle / AfterCompletion은 이 순서의 역순으로 실행됨
	*/
	total = append(total, p.interceptors...)    // 전역 인터셉터
	total = append(total, meta.Interceptors...) // 라우트 인터셉터

	return total
}

func (p *Pipeline) resolveArguments(ctx core.ExecutionContext, paramMetas []resolver.ParameterMeta) ([]any, error) {
	args := make([]any, len(paramMetas))
	for _, pm := range paramMetas {
		resolved := false
		for _, r := range p.argumentResolvers {
			if !r.Supports(pm) {
				continue
			}
			value, err := r.Resolve(ctx, pm)
			if err != nil {
				return nil, err
			}
			args[pm.Index] = value
			resolved = true
			break
		}
		if !resolved {
			return nil, fmt.Errorf(
				"해당 파라미터 타입을 처리할 ArgumentResolver가 없습니다: %v",
				pm.Type,
			)
		}
	}
	return args, nil
}

func (p *Pipeline) handleReturn(ctx core.ExecutionContext, meta core.HandlerMeta, results []any) error {
	methodType := meta.Method.Type
	errType := reflect.TypeFor[error]()

	// 에러 반환값이 있으면 그쪽이 응답을 결정한다.
	for idx, result := range results {
		if !methodType.Out(idx).Implements(errType) {
			continue
		}
		if err, ok := result.(error); ok && err != nil {
			return err
		}
	}

	for idx, result := range results {
		outType := methodType.Out(idx)
		if outType.Implements(errType) {
			continue
		}

		h := p.findReturnHandler(outType)
		if h == nil {
			return fmt.Errorf("해당 반환 타입을 처리할 ReturnValueHandler가 없습니다: %v", outType)
		}
		if err := h.Handle(result, ctx); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) findReturnHandler(returnType reflect.Type) handler.ReturnValueHandler {
	for _, h := range p.returnHandlers {
		if h.Supports(returnType) {
			return h
		}
	}
	return nil
}

/*
handleExecutionError는 실행 중 발생한 에러를 응답으로 변환합니다.
httperr.HTTPError는 해당 상태 코드로, 그 외는 500으로 기록됩니다.
응답 표면이 없는 실행(Consumer 등)은 로그만 남깁니다.
*/
func (p *Pipeline) handleExecutionError(ctx core.ExecutionContext, err error) {
	raw, ok := ctx.Get(core.StoreKeyResponseWriter)
	if !ok {
		log.Printf("[Pipeline] 실행 실패 (응답 표면 없음): %v", err)
		return
	}

	// 이미 기록이 시작된 응답은 덮어쓰지 않는다.
	if rw, ok := raw.(core.ResponseWriter); ok && rw.IsCommitted() {
		log.Printf("[Pipeline] 실행 실패 (응답은 이미 커밋됨): %v", err)
		return
	}

	errorHandler := &handler.ErrorReturnHandler{}
	if writeErr := errorHandler.Handle(err, ctx); writeErr != nil {
		log.Printf("[Pipeline] 에러 응답 작성 실패: %v (원인: %v)", writeErr, err)
	}
}

func buildParameterMeta(method reflect.Method, ctx core.ExecutionContext) ([]resolver.ParameterMeta, error) {
	pathKeys := ctx.PathKeys()

	pathIdx := 0
	var metas []resolver.ParameterMeta

	for i := 1; i < method.Type.NumIn(); i++ {
		pt := method.Type.In(i)

		pm := resolver.ParameterMeta{
			Index: i - 1,
			Type:  pt,
		}

		if isPathType(pt) {
			if pathIdx >= len(pathKeys) {
				return nil, fmt.Errorf(
					"path 파라미터 개수가 라우트 패턴보다 많습니다 (%s)",
					method.Name,
				)
			}
			pm.PathKey = pathKeys[pathIdx]
			pathIdx++
		}

		metas = append(metas, pm)
	}

	return metas, nil
}

func isPathType(t reflect.Type) bool {
	return t == reflect.TypeFor[path.Int]() || t == reflect.TypeFor[path.String]()
}
