package echo

import (
	"log"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/internal/pipeline"
	"github.com/labstack/echo/v4"
)

// Adapter는 Echo 요청을 Tether 실행 모델로 연결합니다.
type Adapter struct {
	pipeline *pipeline.Pipeline
}

func NewAdapter(pipeline *pipeline.Pipeline) *Adapter {
	return &Adapter{
		pipeline: pipeline,
	}
}

// Mount는 Echo 인스턴스에 Tether 핸들러를 연결합니다.
func (a *Adapter) Mount(e *echo.Echo) {
	e.Any("/*", func(c echo.Context) error {
		ctx := NewContext(c)
		ctx.Set(core.StoreKeyResponseWriter, NewEchoResponseWriter(c))

		if err := a.pipeline.Execute(ctx); err != nil {
			// 에러 응답은 Pipeline이 이미 작성했다.
			log.Printf("[Adapter] 요청 실행 실패: %v", err)
		}
		return nil
	})
}
