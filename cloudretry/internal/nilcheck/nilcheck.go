// Package nilcheck detects nil interface values, including typed nils, so
// option handling can fall back to safe defaults.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces
// such as a nil *zap.Logger stored in a log.Logger.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
