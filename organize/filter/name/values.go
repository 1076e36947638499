package name

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/viant/fluxor-organize/organize/pattern"
	"gopkg.in/yaml.v3"
)

// Values is a list of literals that may be configured as a single scalar or
// as a sequence. An unset or empty list behaves like [""], which every name
// satisfies.
type Values []string

// NewValues coerces a scalar, a slice or nil into Values.
func NewValues(v interface{}) (Values, error) {
	switch actual := v.(type) {
	case nil:
		return nil, nil
	case Values:
		return actual, nil
	case []string:
		return Values(actual), nil
	case string:
		return Values{actual}, nil
	case []interface{}:
		result := make(Values, 0, len(actual))
		for i, item := range actual {
			text, err := toString(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			result = append(result, text)
		}
		return result, nil
	}
	text, err := toString(v)
	if err != nil {
		return nil, err
	}
	return Values{text}, nil
}

func toString(v interface{}) (string, error) {
	switch v.(type) {
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
	return cast.ToStringE(v)
}

// normalize returns the canonical list used for matching.
func (v Values) normalize(caseSensitive bool) []string {
	if len(v) == 0 {
		return []string{""}
	}
	result := make([]string, len(v))
	for i, item := range v {
		if !caseSensitive {
			item = pattern.Fold(item)
		}
		result[i] = item
	}
	return result
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = nil
			return nil
		}
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		result := make(Values, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected scalar list item", item.Line)
			}
			result = append(result, item.Value)
		}
		*v = result
		return nil
	}
	return fmt.Errorf("line %d: expected scalar or list", node.Line)
}

// UnmarshalJSON accepts a scalar or an array of scalars.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	values, err := NewValues(raw)
	if err != nil {
		return err
	}
	*v = values
	return nil
}

var valuesType = reflect.TypeOf(Values(nil))

// valuesHook lets mapstructure decode scalars into Values.
func valuesHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != valuesType {
		return data, nil
	}
	return NewValues(data)
}

var _ mapstructure.DecodeHookFuncType = valuesHook
