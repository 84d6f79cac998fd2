package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized checks all fields of a struct (pointer) for nil values,
// skipping fields tagged `wire:"-"`. Used for server readiness.
func IsStructInitialized(s interface{}) error {
	value := reflect.Indirect(reflect.ValueOf(s))
	if value.Kind() != reflect.Struct {
		return errors.New("expected a struct or a pointer to a struct")
	}

	for i := range value.NumField() {
		if value.Type().Field(i).Tag.Get("wire") == "-" {
			continue
		}

		field := value.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
			if field.IsNil() {
				return errors.Errorf("struct field %q is not initialized", value.Type().Field(i).Name)
			}
		default:
			// value types are always initialized
		}
	}

	return nil
}
