package handler

import (
	"net/http"
	"reflect"

	"github.com/NARUBROWN/tether/core"
)

type JSONReturnHandler struct{}

func (h *JSONReturnHandler) Supports(returnType reflect.Type) bool {
	if returnType.Kind() == reflect.Pointer {
		returnType = returnType.Elem()
	}

	switch returnType.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return true
	default:
		return false
	}
}

func (h *JSONReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	return rw.WriteJSON(http.StatusOK, value)
}
