// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helper functions for working
// with the reflect package: navigating pointers, setting values from
// strings, and applying `default:` struct tag values.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetString sets the given settable value from its string representation.
// It supports strings, bools, and all integer and floating point kinds,
// including named types with those underlying kinds.
func SetString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("reflectx.SetString: value of type %v is not settable", v.Type())
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("reflectx.SetString: unsupported kind %v for value of type %v", v.Kind(), v.Type())
	}
	return nil
}

// SetFromDefaultTags sets the values of fields in the given struct
// pointer based on `default:` field tags, descending into nested
// struct fields that do not have a default tag of their own.
// Fields without a default tag are left unchanged.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a non-nil struct pointer, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct pointer, not %T", obj)
	}
	return setFromDefaultTags(val)
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	var errs []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if (!ok || def == "") && f.Type.Kind() == reflect.Struct {
			if err := setFromDefaultTags(fv); err != nil {
				errs = append(errs, err.Error())
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Sprintf("field %s of %s from %q: %v", f.Name, typ.Name(), def, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %s", strings.Join(errs, "; "))
	}
	return nil
}
