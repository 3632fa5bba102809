package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/httperr"
)

type ErrorReturnHandler struct{}

func (h *ErrorReturnHandler) Supports(returnType reflect.Type) bool {
	errorType := reflect.TypeFor[error]()
	return returnType.Implements(errorType)
}

func (h *ErrorReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	handled, ok := value.(error)
	if !ok {
		return fmt.Errorf("ErrorReturnHandler는 error 타입만 처리할 수 있습니다: %T", value)
	}

	status := http.StatusInternalServerError
	message := handled.Error()

	// HTTPError면 상태 코드를 추출한다.
	var httpErr *httperr.HTTPError
	if errors.As(handled, &httpErr) {
		status = httpErr.Status
		message = httpErr.Message
	}

	return rw.WriteJSON(status, map[string]any{
		"message": message,
	})
}
