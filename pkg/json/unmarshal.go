package json

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses data as strict JSON and stores the result in the
// value pointed to by v. See UnmarshalOptions to select a different
// dialect.
//
// Unmarshal follows the same conventions as encoding/json: a pointer
// target is allocated if nil and set to the zero value for a JSON null;
// a struct target matches object members to fields by `json` tag (or Go
// field name for an untagged field) and, failing an exact match, by a
// case-insensitive one; an interface{} target receives one
// of nil, bool, string, float64, []interface{}, or map[string]interface{}.
func Unmarshal(data []byte, v interface{}) error {
	return UnmarshalOptions(data, v, Json)
}

// UnmarshalOptions is Unmarshal with an explicit dialect.
func UnmarshalOptions(data []byte, v interface{}, opts Options) error {
	r, err := NewReaderFromBytesAutodetect(data, opts)
	if err != nil {
		return err
	}
	val, err := r.ParseElement(true)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("json: Unmarshal target must be a non-nil pointer, got %T", v)
	}
	return assignValue(val, rv.Elem())
}

func assignValue(val Value, rv reflect.Value) error {
	if rv.Kind() == reflect.Ptr {
		if val.IsNull() {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return assignValue(val, rv.Elem())
	}
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		iv, err := toInterface(val)
		if err != nil {
			return err
		}
		if iv == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		rv.Set(reflect.ValueOf(iv))
		return nil
	}

	switch val.Type() {
	case TypeNull:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case TypeBool:
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("json: cannot unmarshal bool into %v", rv.Type())
		}
		b, _ := val.AsBool()
		rv.SetBool(b)
		return nil
	case TypeString:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("json: cannot unmarshal string into %v", rv.Type())
		}
		s, _ := val.AsString()
		rv.SetString(s)
		return nil
	case TypeNumber:
		return assignNumber(val, rv)
	case TypeArray:
		return assignArray(val, rv)
	case TypeObject:
		return assignObject(val, rv)
	default:
		return nil
	}
}

func assignNumber(val Value, rv reflect.Value) error {
	f, err := val.AsFloat64()
	if err != nil {
		return err
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(uint64(f))
	default:
		return fmt.Errorf("json: cannot unmarshal number into %v", rv.Type())
	}
	return nil
}

func assignArray(val Value, rv reflect.Value) error {
	elems, _ := val.AsArray()
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := assignValue(e, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Array:
		for i := 0; i < rv.Len() && i < len(elems); i++ {
			if err := assignValue(elems[i], rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("json: cannot unmarshal array into %v", rv.Type())
	}
}

func assignObject(val Value, rv reflect.Value) error {
	keys, _ := val.ObjectKeys()
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("json: map key type must be string, got %v", rv.Type().Key())
		}
		if rv.IsNil() {
			rv.Set(reflect.MakeMap(rv.Type()))
		}
		elemType := rv.Type().Elem()
		for _, k := range keys {
			mv, _ := val.Member(k)
			ev := reflect.New(elemType).Elem()
			if err := assignValue(mv, ev); err != nil {
				return err
			}
			rv.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), ev)
		}
		return nil
	case reflect.Struct:
		fields := structFields(rv.Type())
		for _, k := range keys {
			mv, _ := val.Member(k)
			fi, ok := fields[k]
			if !ok {
				fi, ok = lookupFold(fields, k)
			}
			if !ok {
				continue
			}
			if err := assignValue(mv, rv.Field(fi)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("json: cannot unmarshal object into %v", rv.Type())
	}
}

// lookupFold falls back to a case-insensitive field match, the same
// leniency encoding/json applies when no exact tag/name match exists.
func lookupFold(fields map[string]int, key string) (int, bool) {
	for name, idx := range fields {
		if strings.EqualFold(name, key) {
			return idx, true
		}
	}
	return 0, false
}

func toInterface(val Value) (interface{}, error) {
	switch val.Type() {
	case TypeNull:
		return nil, nil
	case TypeBool:
		b, _ := val.AsBool()
		return b, nil
	case TypeString:
		s, _ := val.AsString()
		return s, nil
	case TypeNumber:
		return val.AsFloat64()
	case TypeArray:
		elems, _ := val.AsArray()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			iv, err := toInterface(e)
			if err != nil {
				return nil, err
			}
			out[i] = iv
		}
		return out, nil
	case TypeObject:
		keys, _ := val.ObjectKeys()
		out := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			mv, _ := val.Member(k)
			iv, err := toInterface(mv)
			if err != nil {
				return nil, err
			}
			out[k] = iv
		}
		return out, nil
	default:
		return nil, nil
	}
}
