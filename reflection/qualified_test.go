package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skdltmxn/refmeta/classinfo"
)

func TestQualifiedName(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		rec  *classinfo.Record
		want string
		ok   bool
	}{
		{"top level", f.foo.Metadata(), "com.example.Foo", true},
		{"nested", f.inner.Metadata(), "com.example.Foo$Inner", true},
		{"no package", f.loose.Metadata(), "Loose", true},
		{"absent", nil, "", false},
		{
			"unresolvable enclosing",
			classinfo.NewBuilder("Orphan").Enclosing("Lcom.example.Missing;").MustBuild(),
			"", false,
		},
		{
			"enclosing without metadata",
			classinfo.NewBuilder("Orphan").Enclosing("Lcom.example.Bare;").MustBuild(),
			"", false,
		},
		{
			"enclosing is not a reference",
			classinfo.NewBuilder("Orphan").Enclosing("[I").MustBuild(),
			"", false,
		},
		{
			"doubly nested",
			classinfo.NewBuilder("Deep").Package("ignored").Enclosing("Lcom.example.Foo$Inner;").MustBuild(),
			"com.example.Foo$Inner$Deep", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.r.QualifiedName(tt.rec)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnclosingAndInnerClasses(t *testing.T) {
	f := newFixture(t)

	outer, err := f.r.EnclosingClass(f.inner)
	require.NoError(t, err)
	assert.Same(t, f.foo, outer)

	outer, err = f.r.EnclosingClass(f.foo)
	require.NoError(t, err)
	assert.Nil(t, outer)

	inner, err := f.r.InnerClasses(f.foo)
	require.NoError(t, err)
	assert.Equal(t, []Type{f.inner}, inner)

	none, err := f.r.InnerClasses(f.bare)
	require.NoError(t, err)
	assert.Empty(t, none)

	sig, ok := f.r.ClassGenericSignature(f.foo)
	assert.True(t, ok)
	assert.Equal(t, "<T:Ljava.lang.Object;>Lcom.example.Base;", sig)

	_, ok = f.r.ClassGenericSignature(f.bare)
	assert.False(t, ok)
}

func TestQualifiedNameEnclosingCycle(t *testing.T) {
	u := NewUniverse()
	self := define(t, u, ClassDef{
		Name:     "p.Self",
		Metadata: blob(t, classinfo.NewBuilder("Self").Package("p").Enclosing("Lp.Self;")),
	})
	define(t, u, ClassDef{
		Name:     "p.A",
		Metadata: blob(t, classinfo.NewBuilder("A").Package("p").Enclosing("Lp.B;")),
	})
	b := define(t, u, ClassDef{
		Name:     "p.B",
		Metadata: blob(t, classinfo.NewBuilder("B").Package("p").Enclosing("Lp.A;")),
	})
	r := u.Resolver()

	_, ok := r.QualifiedName(self.Metadata())
	assert.False(t, ok)
	_, ok = r.QualifiedName(b.Metadata())
	assert.False(t, ok)
}

func TestClassAccessorsNilClass(t *testing.T) {
	f := newFixture(t)

	outer, err := f.r.EnclosingClass(nil)
	assert.NoError(t, err)
	assert.Nil(t, outer)

	inner, err := f.r.InnerClasses(nil)
	assert.NoError(t, err)
	assert.Nil(t, inner)

	_, ok := f.r.ClassGenericSignature(nil)
	assert.False(t, ok)
}
