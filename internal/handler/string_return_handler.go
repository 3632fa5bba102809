package handler

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

type StringReturnHandler struct{}

func (h *StringReturnHandler) Supports(returnType reflect.Type) bool {
	return returnType.Kind() == reflect.String
}

func (h *StringReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("StringReturnHandler는 string 타입만 처리할 수 있습니다: %T", value)
	}

	return rw.WriteString(http.StatusOK, s)
}
