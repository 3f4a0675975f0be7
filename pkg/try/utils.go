package try

import (
	"reflect"

	"go.uber.org/multierr"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsFault reports whether v is a fault-shaped value: a non-nil error
// returned normally instead of raised.
func IsFault(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(error)
	return ok
}

// Errors splits a combined fault into its parts.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}
