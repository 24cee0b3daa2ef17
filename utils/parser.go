package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/shegerpay/shegerpay-go/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Amounts validate as numbers so `gte=0` works on decimal fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Register custom validators
	_ = validate.RegisterValidation("chain", validateChainTag)
	_ = validate.RegisterValidation("crypto_currency", validateCryptoCurrencyTag)
}

// ValidateStruct runs struct tag validation and returns the raw validator error.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// ValidateParams validates caller supplied parameters. Failures are
// validation errors without a status code.
func ValidateParams(params any) error {
	if err := validate.Struct(params); err != nil {
		return types.WrapError(types.KindValidation, describeValidation(err), err)
	}
	return nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Sprintf("validation failed: %v", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// ParseObject decodes a JSON object body. Numbers keep their literal text.
func ParseObject(data []byte) (types.Object, error) {
	var obj types.Object
	if err := decodeJSON(data, &obj); err != nil {
		return nil, types.WrapError(types.KindResponse, "failed to parse response object", err)
	}
	if obj == nil {
		return nil, types.NewError(types.KindResponse, "expected a JSON object, got null")
	}
	return obj, nil
}

// ParseValue decodes any JSON body as is: objects, arrays and scalars come
// back as map[string]any, []any, json.Number, string, bool or nil.
func ParseValue(data []byte) (any, error) {
	var v any
	if err := decodeJSON(data, &v); err != nil {
		return nil, types.WrapError(types.KindResponse, "failed to parse response", err)
	}
	return v, nil
}

// ParseObjectList decodes either a bare JSON array of objects or an object
// wrapping the array under key. A missing or null key is an empty list.
func ParseObjectList(data []byte, key string) ([]types.Object, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []types.Object
		if err := decodeJSON(trimmed, &list); err != nil {
			return nil, types.WrapError(types.KindResponse, "failed to parse response list", err)
		}
		return nonNil(list), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, types.WrapError(types.KindResponse, "failed to parse response list", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return []types.Object{}, nil
	}
	var list []types.Object
	if err := decodeJSON(raw, &list); err != nil {
		return nil, types.WrapError(types.KindResponse, fmt.Sprintf("failed to parse %q list", key), err)
	}
	return nonNil(list), nil
}

// DecimalNumber renders d as a JSON number without float rounding.
func DecimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// FlexString returns a JSON string value unquoted and any other JSON value as
// its literal text. null and absent values yield "".
func FlexString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func nonNil(list []types.Object) []types.Object {
	if list == nil {
		return []types.Object{}
	}
	return list
}

func validateChainTag(fl validator.FieldLevel) bool {
	_, ok := types.ParseChain(fl.Field().String())
	return ok
}

func validateCryptoCurrencyTag(fl validator.FieldLevel) bool {
	_, ok := types.ParseCryptoCurrency(fl.Field().String())
	return ok
}
