package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Query binds URL query parameters using `query` struct tags. Requests
// without a query string are not applicable.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		values.Del("datastar")
		if len(values) == 0 {
			return ErrNotApplicable
		}
		return bindToStruct(v, "query", values)
	}
}

func bindToStruct(v any, tagName string, values map[string][]string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrFailedToParseQuery)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		name, skip := fieldName(sf, tagName)
		if skip {
			continue
		}
		fieldValues, ok := values[name]
		if !ok || len(fieldValues) == 0 {
			continue
		}
		if err := setField(field, fieldValues); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToParseQuery, name, err)
		}
	}
	return nil
}

func fieldName(sf reflect.StructField, tagName string) (string, bool) {
	tag := sf.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(sf.Name), false
	case "-":
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setField(field reflect.Value, values []string) error {
	if field.Kind() == reflect.Slice {
		var all []string
		for _, v := range values {
			for part := range strings.SplitSeq(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					all = append(all, part)
				}
			}
		}
		slice := reflect.MakeSlice(field.Type(), len(all), len(all))
		for i, v := range all {
			if err := setScalar(slice.Index(i), v); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}
	return setScalar(field, values[0])
}

func setScalar(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
