package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skdltmxn/refmeta/classinfo"
)

func TestMatchesField(t *testing.T) {
	rec := classinfo.NewBuilder("Foo").
		AddField(classinfo.FieldSpec{Key: "value_", Type: "I"}).
		AddField(classinfo.FieldSpec{Key: "count", Type: "J", Name: "total"}).
		AddField(classinfo.FieldSpec{Key: "", Type: "I"}).
		AddField(classinfo.FieldSpec{Key: "_", Type: "I"}).
		MustBuild()

	value, count, empty, marker := rec.Field(0), rec.Field(1), rec.Field(2), rec.Field(3)

	tests := []struct {
		name  string
		entry *classinfo.FieldEntry
		query string
		want  bool
	}{
		{"marker stripped", value, "value", true},
		{"exact key", value, "value_", true},
		{"other name", value, "values", false},
		{"alternate name", count, "total", true},
		{"key with alternate", count, "count", true},
		{"empty key exact", empty, "", true},
		{"empty key no strip", empty, "x", false},
		{"bare marker", marker, "", false},
		{"bare marker exact", marker, "_", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesField(rec, tt.entry, tt.query))
		})
	}

	assert.Equal(t, "value", fieldLogicalName(rec, value))
	assert.Equal(t, "total", fieldLogicalName(rec, count))
	assert.Equal(t, "", fieldLogicalName(rec, empty))
	assert.Equal(t, "_", fieldLogicalName(rec, marker))
}

func TestMatchesMethodName(t *testing.T) {
	rec := classinfo.NewBuilder("Foo").
		AddMethod(classinfo.MethodSpec{Key: "sizeWithInt:", ReturnType: "I", Params: "I"}).
		AddMethod(classinfo.MethodSpec{Key: "of", ReturnType: "V", Name: "create"}).
		AddMethod(classinfo.MethodSpec{Key: "fooWithInt:withBar:", ReturnType: "V", Name: "foo2"}).
		MustBuild()

	size, of, foo := rec.Method(0), rec.Method(1), rec.Method(2)

	assert.True(t, matchesMethodName(rec, size, "size"))
	assert.True(t, matchesMethodName(rec, size, "sizeWithInt:"))
	assert.False(t, matchesMethodName(rec, size, "sizeWithInt"))
	assert.True(t, matchesMethodName(rec, of, "create"))
	assert.True(t, matchesMethodName(rec, of, "of"))
	assert.True(t, matchesMethodName(rec, foo, "foo2"))
	assert.False(t, matchesMethodName(rec, foo, "foo"), "derived name is ignored when an alternate name exists")

	assert.Equal(t, "size", methodLogicalName(rec, size))
	assert.Equal(t, "create", methodLogicalName(rec, of))
}

func TestMethodNameFromKey(t *testing.T) {
	tests := map[string]string{
		"run":                         "run",
		"run:":                        "run",
		"sizeWithInt:":                "size",
		"fooWithInt:withBar:":         "foo",
		"tagsWithNSStringArray:":      "tags",
		"withdrawWithAmount:":         "withdraw",
		"bandwidth:":                  "bandwidth",
		"mergeWithWithOther:":         "mergeWith",
		"With:":                       "With",
		"initWithComExampleFoo:with:": "init",
		"":                            "",
	}
	for key, want := range tests {
		assert.Equal(t, want, methodNameFromKey(key), "key %q", key)
	}
}
