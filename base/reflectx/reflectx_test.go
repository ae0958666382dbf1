// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type level int32

type inner struct {
	Count int     `default:"200"`
	Rate  float32 `default:"0.001"`
}

type defaultsTest struct {
	Name    string  `default:"sun"`
	Enabled bool    `default:"true"`
	Seed    int64   `default:"-3"`
	Size    float64 `default:"5"`
	Level   level   `default:"2"`
	NoTag   string
	Inner   inner
	hidden  int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	d := &defaultsTest{NoTag: "keep"}
	assert.NoError(t, SetFromDefaultTags(d))
	assert.Equal(t, "sun", d.Name)
	assert.True(t, d.Enabled)
	assert.Equal(t, int64(-3), d.Seed)
	assert.Equal(t, 5.0, d.Size)
	assert.Equal(t, level(2), d.Level)
	assert.Equal(t, "keep", d.NoTag)
	assert.Equal(t, 200, d.Inner.Count)
	assert.Equal(t, float32(0.001), d.Inner.Rate)
	assert.Equal(t, 0, d.hidden)

	assert.Error(t, SetFromDefaultTags(defaultsTest{}))
	assert.NoError(t, SetFromDefaultTags(nil))

	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}

func TestSetString(t *testing.T) {
	var u uint16
	assert.NoError(t, SetString(reflect.ValueOf(&u).Elem(), "0x10"))
	assert.Equal(t, uint16(16), u)
	assert.Error(t, SetString(reflect.ValueOf(u), "1"))

	var s []int
	assert.Error(t, SetString(reflect.ValueOf(&s).Elem(), "1"))
}

func TestNonPointer(t *testing.T) {
	v := 3
	p := &v
	pp := &p
	assert.Equal(t, reflect.TypeOf(v), NonPointerType(reflect.TypeOf(pp)))
	assert.Equal(t, 3, NonPointerValue(reflect.ValueOf(pp)).Interface())
	assert.Nil(t, NonPointerType(nil))
}
