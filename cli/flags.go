// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/orrery/base/reflectx"
	"github.com/spf13/pflag"
)

// fieldValue is a [pflag.Value] bound to a settable struct field.
type fieldValue struct {
	v reflect.Value
}

func (f *fieldValue) String() string {
	if !f.v.IsValid() {
		return ""
	}
	return fmt.Sprint(f.v.Interface())
}

func (f *fieldValue) Set(s string) error {
	return reflectx.SetString(f.v, s)
}

func (f *fieldValue) Type() string {
	if !f.v.IsValid() {
		return "string"
	}
	return f.v.Kind().String()
}

// AddFlags adds a flag to the given flag set for every field of the
// given struct pointer that has a `flag:"name[,shorthand]"` tag.
// Untagged struct fields are searched recursively. The flag usage
// comes from the `desc:` tag.
func AddFlags(fs *pflag.FlagSet, cfg any) error {
	val := reflectx.NonPointerValue(reflect.ValueOf(cfg))
	if val.Kind() != reflect.Struct || !val.CanAddr() {
		return fmt.Errorf("cli.AddFlags: expected a pointer to a struct, not %T", cfg)
	}
	addFlags(fs, val)
	return nil
}

func addFlags(fs *pflag.FlagSet, val reflect.Value) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		tag, ok := f.Tag.Lookup("flag")
		if !ok {
			if fv.Kind() == reflect.Struct {
				addFlags(fs, fv)
			}
			continue
		}
		name, short, _ := strings.Cut(tag, ",")
		fl := fs.VarPF(&fieldValue{fv}, name, short, f.Tag.Get("desc"))
		if fv.Kind() == reflect.Bool {
			fl.NoOptDefVal = "true"
		}
	}
}
