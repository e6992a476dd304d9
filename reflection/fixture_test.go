package reflection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skdltmxn/refmeta/classinfo"
)

func blob(t *testing.T, b *classinfo.Builder) Blob {
	t.Helper()
	rec, err := b.Build()
	require.NoError(t, err)
	data, err := classinfo.Encode(rec)
	require.NoError(t, err)
	return Blob(data)
}

func define(t *testing.T, u *Universe, def ClassDef) *RuntimeClass {
	t.Helper()
	c, err := u.Define(def)
	require.NoError(t, err)
	return c
}

// fixture is a small class graph:
//
//	java.lang.Object
//	java.lang.String
//	com.example.Base  implements Named          describe()
//	com.example.Named (interface)
//	com.example.Describable (interface)         describe()
//	com.example.Foo   extends Base implements Named, Describable
//	com.example.Foo$Inner
//	com.example.Shape (abstract)
//	Loose             (no package)
type fixture struct {
	u        *Universe
	r        *Resolver
	object   *RuntimeClass
	str      *RuntimeClass
	named    *RuntimeClass
	desc     *RuntimeClass
	base     *RuntimeClass
	foo      *RuntimeClass
	inner    *RuntimeClass
	shape    *RuntimeClass
	loose    *RuntimeClass
	bare     *RuntimeClass
	intType  Type
	longType Type
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	u := NewUniverse(opts...)
	f := &fixture{u: u, r: u.Resolver()}

	f.object = define(t, u, ClassDef{
		Name:            "java.lang.Object",
		InstanceMembers: []Member{{Key: "init", Encoding: "@16@0:8"}, {Key: "hash", Encoding: "i16@0:8"}},
		Metadata: blob(t, classinfo.NewBuilder("Object").
			Package("java.lang").
			AddMethod(classinfo.MethodSpec{Key: "init", Modifiers: classinfo.ModPublic}).
			AddMethod(classinfo.MethodSpec{Key: "hash", ReturnType: "I", Modifiers: classinfo.ModPublic, Name: "hashCode"})),
	})

	f.str = define(t, u, ClassDef{
		Name:       "java.lang.String",
		Superclass: "java.lang.Object",
		Metadata:   blob(t, classinfo.NewBuilder("String").Package("java.lang")),
	})

	f.named = define(t, u, ClassDef{
		Name:      "com.example.Named",
		Interface: true,
		ProtocolMembers: []ProtocolMember{
			{Member: Member{Key: "name", Encoding: "@16@0:8"}, Required: true},
		},
		Metadata: blob(t, classinfo.NewBuilder("Named").
			Package("com.example").
			Modifiers(classinfo.ModPublic|classinfo.ModInterface|classinfo.ModAbstract).
			AddMethod(classinfo.MethodSpec{Key: "name", ReturnType: "Ljava.lang.String;", Modifiers: classinfo.ModPublic | classinfo.ModAbstract})),
	})

	f.desc = define(t, u, ClassDef{
		Name:      "com.example.Describable",
		Interface: true,
		ProtocolMembers: []ProtocolMember{
			{Member: Member{Key: "describe", Encoding: "@16@0:8"}, Required: false},
		},
		Metadata: blob(t, classinfo.NewBuilder("Describable").
			Package("com.example").
			AddMethod(classinfo.MethodSpec{Key: "describe", ReturnType: "Ljava.lang.String;", Modifiers: classinfo.ModPublic})),
	})

	f.base = define(t, u, ClassDef{
		Name:            "com.example.Base",
		Superclass:      "java.lang.Object",
		InstanceMembers: []Member{{Key: "describe", Encoding: "@16@0:8"}, {Key: "init", Encoding: "@16@0:8"}},
		Metadata: blob(t, classinfo.NewBuilder("Base").
			Package("com.example").
			AddMethod(classinfo.MethodSpec{Key: "init"}).
			AddMethod(classinfo.MethodSpec{Key: "describe", ReturnType: "Ljava.lang.String;", Modifiers: classinfo.ModPublic})),
	})

	f.foo = define(t, u, ClassDef{
		Name:       "com.example.Foo",
		Superclass: "com.example.Base",
		Interfaces: []string{"com.example.Named", "com.example.Describable"},
		InstanceMembers: []Member{
			{Key: "init", Encoding: "@16@0:8"},
			{Key: "initWithInt:", Encoding: "@20@0:8i16"},
			{Key: "initWithPoint:", Encoding: "@32@0:8{CGPoint=dd}16"},
			{Key: "sizeWithInt:", Encoding: "i20@0:8i16"},
			{Key: "name", Encoding: "@16@0:8"},
			{Key: "location", Encoding: "{CGPoint=dd}16@0:8"},
			{Key: "broken", Encoding: "v16@0:8x"},
			{Key: "opaque"},
			{Key: "value_", Encoding: "i"},
			{Key: "count", Encoding: "q"},
			{Key: "tagsWithNSStringArray:", Encoding: "v24@0:8@16"},
			{Key: "badParams", Encoding: "v16@0:8"},
		},
		ClassMembers: []Member{
			{Key: "of", Encoding: "@16@0:8"},
			{Key: "DEFAULT_", Encoding: "@"},
		},
		Metadata: blob(t, classinfo.NewBuilder("Foo").
			Package("com.example").
			Modifiers(classinfo.ModPublic).
			GenericSignature("<T:Ljava.lang.Object;>Lcom.example.Base;").
			InnerClasses("Lcom.example.Foo$Inner;").
			AddMethod(classinfo.MethodSpec{Key: "init", Modifiers: classinfo.ModPublic}).
			AddMethod(classinfo.MethodSpec{Key: "initWithInt:", Params: "I", Modifiers: classinfo.ModPublic}).
			AddMethod(classinfo.MethodSpec{Key: "initWithPoint:", Params: "J"}).
			AddMethod(classinfo.MethodSpec{Key: "sizeWithInt:", ReturnType: "I", Params: "I", Modifiers: classinfo.ModPublic,
				Exceptions: "Ljava.lang.String;"}).
			AddMethod(classinfo.MethodSpec{Key: "of", ReturnType: "Lcom.example.Foo;", Modifiers: classinfo.ModPublic | classinfo.ModStatic,
				Name: "create", GenericSignature: "()Lcom.example.Foo<TT;>;"}).
			AddMethod(classinfo.MethodSpec{Key: "name", ReturnType: "Ljava.lang.String;", Modifiers: classinfo.ModPublic}).
			AddMethod(classinfo.MethodSpec{Key: "location", ReturnType: "J"}).
			AddMethod(classinfo.MethodSpec{Key: "broken", ReturnType: "V"}).
			AddMethod(classinfo.MethodSpec{Key: "opaque", ReturnType: "V"}).
			AddMethod(classinfo.MethodSpec{Key: "missing", ReturnType: "V"}).
			AddMethod(classinfo.MethodSpec{Key: "tagsWithNSStringArray:", ReturnType: "V", Params: "[Ljava.lang.String;"}).
			AddMethod(classinfo.MethodSpec{Key: "badParams", ReturnType: "V", Params: "IQ"}).
			AddField(classinfo.FieldSpec{Key: "value_", Type: "I", Modifiers: classinfo.ModPrivate}).
			AddField(classinfo.FieldSpec{Key: "count", Type: "J", Name: "total"}).
			AddField(classinfo.FieldSpec{Key: "DEFAULT_", Type: "Lcom.example.Foo;", Modifiers: classinfo.ModStatic | classinfo.ModFinal}).
			AddField(classinfo.FieldSpec{Key: "ghost", Type: "I"})),
	})

	f.inner = define(t, u, ClassDef{
		Name:            "com.example.Foo$Inner",
		Superclass:      "java.lang.Object",
		InstanceMembers: []Member{{Key: "init", Encoding: "@16@0:8"}},
		Metadata: blob(t, classinfo.NewBuilder("Inner").
			Package("com.example").
			Enclosing("Lcom.example.Foo;").
			AddMethod(classinfo.MethodSpec{Key: "init"})),
	})

	f.shape = define(t, u, ClassDef{
		Name:            "com.example.Shape",
		Superclass:      "java.lang.Object",
		Abstract:        true,
		InstanceMembers: []Member{{Key: "init", Encoding: "@16@0:8"}},
		Metadata: blob(t, classinfo.NewBuilder("Shape").
			Package("com.example").
			Modifiers(classinfo.ModPublic|classinfo.ModAbstract).
			AddMethod(classinfo.MethodSpec{Key: "init"})),
	})

	f.loose = define(t, u, ClassDef{
		Name:     "Loose",
		Metadata: blob(t, classinfo.NewBuilder("Loose")),
	})

	f.bare = define(t, u, ClassDef{Name: "com.example.Bare", Superclass: "java.lang.Object"})

	var ok bool
	f.intType, ok = u.ResolvePrimitive('I')
	require.True(t, ok)
	f.longType, ok = u.ResolvePrimitive('J')
	require.True(t, ok)
	return f
}
