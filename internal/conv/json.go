package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert copies in into the value outPtr points to. Assignable values are
// set directly, anything else goes through a JSON round trip. A nil input
// leaves the destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}
	if in == nil {
		return nil
	}
	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}
	if inVal.Kind() == reflect.Ptr && !inVal.IsNil() && inVal.Elem().Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal.Elem())
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv.Convert: %w", err)
	}
	if err = json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv.Convert: %w", err)
	}
	return nil
}

// Assign stores value into output, which is either *interface{} or a
// pointer Convert can populate. A nil output is ignored.
func Assign(output any, value any) error {
	switch actual := output.(type) {
	case nil:
		return nil
	case *interface{}:
		*actual = value
		return nil
	}
	return Convert(value, output)
}
