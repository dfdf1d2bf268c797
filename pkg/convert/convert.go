// Package convert converts loosely typed values, most commonly text,
// to values of a concrete type.
package convert

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// ErrorUnsupported is returned when a value can't be converted
// to the target type at all.
type ErrorUnsupported struct {
	Target reflect.Type
}

func (e ErrorUnsupported) Error() string {
	return fmt.Sprintf("convert: unsupported target type %v", e.Target)
}

var (
	typeDuration        = reflect.TypeOf(time.Duration(0))
	typeTime            = reflect.TypeOf(time.Time{})
	typeTextUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// To converts v to T.
//
// time.Duration and time.Time accept the formats of github.com/spf13/cast.
// Types implementing encoding.TextUnmarshaler are decoded from
// their text. Other types are converted by their kind,
// which includes named types such as `type Level int8`.
func To[T any](v any) (r T, err error) {
	if x, ok := v.(T); ok {
		return x, nil
	}
	rv := reflect.ValueOf(&r).Elem()
	if err = set(rv, v); err != nil {
		var z T
		return z, err
	}
	return r, nil
}

// String converts s to T.
func String[T any](s string) (T, error) { return To[T](s) }

func set(dst reflect.Value, v any) error {
	t := dst.Type()

	switch t {
	case typeDuration:
		d, err := cast.ToDurationE(v)
		if err != nil {
			return err
		}
		dst.SetInt(int64(d))
		return nil
	case typeTime:
		tm, err := cast.ToTimeE(v)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(tm))
		return nil
	}

	if reflect.PointerTo(t).Implements(typeTextUnmarshaler) {
		var text []byte
		switch x := v.(type) {
		case string:
			text = []byte(x)
		case []byte:
			text = x
		default:
			text = []byte(cast.ToString(v))
		}
		u := dst.Addr().Interface().(encoding.TextUnmarshaler)
		return u.UnmarshalText(text)
	}

	switch t.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		dst.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := toInt64(v)
		if err != nil {
			return err
		}
		if dst.OverflowInt(i) {
			return fmt.Errorf("convert: %d overflows %v", i, t)
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		u, err := toUint64(v)
		if err != nil {
			return err
		}
		if dst.OverflowUint(u) {
			return fmt.Errorf("convert: %d overflows %v", u, t)
		}
		dst.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if t.Elem().Kind() != reflect.Uint8 {
			return ErrorUnsupported{Target: t}
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		dst.SetBytes([]byte(s))
	default:
		return ErrorUnsupported{Target: t}
	}
	return nil
}

// toInt64 parses text as a decimal number,
// leading zeros don't switch to octal.
func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		return strconv.ParseInt(x, 10, 64)
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	}
	return cast.ToInt64E(v)
}

func toUint64(v any) (uint64, error) {
	switch x := v.(type) {
	case string:
		return strconv.ParseUint(x, 10, 64)
	case []byte:
		return strconv.ParseUint(string(x), 10, 64)
	}
	return cast.ToUint64E(v)
}
