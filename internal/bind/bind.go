// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Package bind maps Go values to database parameter descriptors for
// use with parameterized statements.
package bind

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedType reports a value whose type has no entry in the
// parameter type map.
var ErrUnsupportedType = errors.New("unsupported parameter type")

// marker prefixes every parameter name.
const marker = "@"

// Type is the declared database type of a parameter.
type Type int

const (
	TypeInvalid Type = iota
	TypeInteger
	TypeText
	TypeBoolean
	TypeDecimal
	TypeDouble
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeText:
		return "text"
	case TypeBoolean:
		return "boolean"
	case TypeDecimal:
		return "decimal"
	case TypeDouble:
		return "double"
	default:
		return "invalid"
	}
}

// Param pairs a value with its parameter name and declared type.
type Param struct {
	Name  string
	Value any
	Type  Type
}

// IsZero reports whether p is the empty descriptor returned for nil
// and pointer-typed values.
func (p Param) IsZero() bool {
	return p.Name == "" && p.Value == nil && p.Type == TypeInvalid
}

// Bind maps value to a parameter descriptor. The type map is a closed
// allow-list: integers, strings (trimmed of surrounding whitespace),
// booleans, time.Time (bound as its textual form, not a native date),
// *big.Rat (decimal), and floats. Anything else fails with
// ErrUnsupportedType.
//
// A nil value, or a pointer-typed value standing in for a nullable,
// yields the empty descriptor without error. When no name is given one
// is synthesized from the mapped type plus a random suffix; a given
// name gets the "@" marker prefixed if absent.
func Bind(value any, name ...string) (Param, error) {
	if value == nil {
		return Param{}, nil
	}

	var p Param
	switch v := value.(type) {
	case int:
		p = Param{Value: int64(v), Type: TypeInteger}
	case int8:
		p = Param{Value: int64(v), Type: TypeInteger}
	case int16:
		p = Param{Value: int64(v), Type: TypeInteger}
	case int32:
		p = Param{Value: int64(v), Type: TypeInteger}
	case int64:
		p = Param{Value: v, Type: TypeInteger}
	case string:
		p = Param{Value: strings.TrimSpace(v), Type: TypeText}
	case bool:
		p = Param{Value: v, Type: TypeBoolean}
	case time.Time:
		p = Param{Value: v.Format(time.RFC3339), Type: TypeText}
	case *big.Rat:
		if v == nil {
			return Param{}, nil
		}
		p = Param{Value: v.RatString(), Type: TypeDecimal}
	case float32:
		p = Param{Value: float64(v), Type: TypeDouble}
	case float64:
		p = Param{Value: v, Type: TypeDouble}
	default:
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			return Param{}, nil
		}
		return Param{}, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
		p.Name = withMarker(strings.TrimSpace(name[0]))
	} else {
		p.Name = synthesizeName(p.Type)
	}
	return p, nil
}

// withMarker prefixes the parameter marker if absent.
func withMarker(name string) string {
	if strings.HasPrefix(name, marker) {
		return name
	}
	return marker + name
}

// synthesizeName builds a parameter name from the type name plus a
// 4-character random suffix, for callers that don't care what the
// parameter is called.
func synthesizeName(t Type) string {
	return marker + t.String() + "_" + uuid.NewString()[:4]
}
