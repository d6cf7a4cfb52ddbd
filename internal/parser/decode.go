package parser

import (
	"fmt"
	"iiwa-config/internal/models"
	"reflect"
	"strconv"
	"strings"
)

const tagName = "kv"

// Decode copies values from raw into the struct pointed to by dst. Fields are
// selected with `kv:"key"` tags; `kv:"key,optional"` leaves the field at its
// zero value when the key is absent, any other tagged field must be present.
//
// Supported field kinds are string, signed integers and bool. A bool is true
// only when the value is exactly "true".
func Decode(raw RawConfig, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil struct pointer, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag, ok := field.Tag.Lookup(tagName)
		if !ok || tag == "-" {
			continue
		}
		key, optional := parseTag(tag)

		value, present := raw[key]
		if !present {
			if optional {
				continue
			}
			return fmt.Errorf("%w: %q", models.ErrConfig, key)
		}

		if err := setField(rv.Field(i), key, value); err != nil {
			return err
		}
	}
	return nil
}

func parseTag(tag string) (key string, optional bool) {
	key, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "optional" {
			optional = true
		}
	}
	return key, optional
}

func setField(fv reflect.Value, key, value string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", models.ErrFormat, key, value)
		}
		fv.SetInt(n)
	case reflect.Bool:
		fv.SetBool(value == "true")
	default:
		return fmt.Errorf("unsupported field kind %s for key %q", fv.Kind(), key)
	}
	return nil
}
