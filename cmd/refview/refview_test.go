package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/internal/model"
	"github.com/skdltmxn/refmeta/reflection"
)

const sampleModel = "../../internal/model/testdata/sample.yaml"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

var sampleAbs string

func init() {
	abs, err := filepath.Abs(sampleModel)
	if err != nil {
		panic(err)
	}
	sampleAbs = abs
}

// run executes refview with args and returns what it wrote to its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	out := filepath.Join(t.TempDir(), "out")
	rootCmd.SetArgs(append(args, "--output", out))
	err := rootCmd.Execute()
	// The post-run hook is skipped when a command fails.
	if f, ok := output.(*os.File); ok && f != os.Stdout {
		f.Close()
	}

	data, readErr := os.ReadFile(out)
	if readErr != nil && !os.IsNotExist(readErr) {
		t.Fatal(readErr)
	}
	return string(data), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", sampleAbs, "com.example.Foo$Inner")
	require.NoError(t, err)
	assert.Contains(t, out, "Class: com.example.Foo$Inner\n")
	assert.Contains(t, out, "Superclass: java.lang.Object\n")
	assert.Contains(t, out, "Qualified Name: com.example.Foo$Inner\n")
	assert.Contains(t, out, "Enclosing Class: com.example.Foo\n")
	assert.Contains(t, out, "Version: 7\n")

	out, err = run(t, "info", sampleAbs, "com.example.Foo")
	require.NoError(t, err)
	assert.Contains(t, out, "Interfaces: com.example.Named\n")
	assert.Contains(t, out, "Inner Classes: com.example.Foo$Inner\n")
	assert.Contains(t, out, "Methods: 6\n")
	assert.Contains(t, out, "Fields: 2\n")

	_, err = run(t, "info", sampleAbs, "com.example.Nope")
	assert.Error(t, err)
}

func TestMethodsAndFields(t *testing.T) {
	out, err := run(t, "methods", sampleAbs, "com.example.Foo")
	require.NoError(t, err)
	assert.Contains(t, out, "public com.example.Foo(int)")
	assert.Contains(t, out, "public int com.example.Foo.size(int)")
	assert.Contains(t, out, "public static com.example.Foo com.example.Foo.create()")
	assert.Regexp(t, `unsupported\s+location\s+location\(\)J`, out)

	out, err = run(t, "fields", sampleAbs, "com.example.Foo")
	require.NoError(t, err)
	assert.Contains(t, out, "private int com.example.Foo.value")
	assert.Regexp(t, `unsupported\s+ghost\s+I ghost`, out)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"method by name", []string{"com.example.Foo", "size", "I"}, "Declaration: public int com.example.Foo.size(int)"},
		{"method by key", []string{"com.example.Foo", "sizeWithInt:", "--key"}, "Native Key: sizeWithInt:"},
		{"static method", []string{"com.example.Foo", "create"}, "Native Key: of"},
		{"constructor", []string{"com.example.Foo", "--ctor", "I"}, "Declaration: public com.example.Foo(int)"},
		{"constructor by key", []string{"com.example.Foo", "--ctor", "--key", "init"}, "Declaration: public com.example.Foo()"},
		{"field", []string{"com.example.Foo", "value", "--field"}, "Native Key: value_"},
		{"inherited", []string{"com.example.Foo", "hashCode", "--inherited"}, "Declaring Class: java.lang.Object"},
		{"inherited key", []string{"com.example.Foo", "describe", "-k", "-i"}, "Declaring Class: com.example.Base"},
		{"signature", []string{"com.example.Foo", "size", "I"}, "Signature: i (@ : i)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"lookup", sampleAbs}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestLookupMisses(t *testing.T) {
	tests := map[string][]string{
		"wrong params":      {"com.example.Foo", "size", "J"},
		"not inherited":     {"com.example.Foo", "hashCode"},
		"composite":         {"com.example.Foo", "location", "--key"},
		"missing field":     {"com.example.Foo", "ghost", "--field"},
		"bad descriptor":    {"com.example.Foo", "size", "Q"},
		"abstract ctor":     {"com.example.Named", "--ctor"},
		"no name":           {"com.example.Foo"},
		"unresolved params": {"com.example.Foo", "size", "Lcom.example.Nope;"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, append([]string{"lookup", sampleAbs}, args...)...)
			assert.Error(t, err)
		})
	}
}

func TestLookupInheritedFromConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "refview.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("lookup:\n  inherited: true\n"), 0o644))

	out, err := run(t, "lookup", sampleAbs, "com.example.Foo", "hashCode", "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "Declaring Class: java.lang.Object")

	_, err = run(t, "lookup", sampleAbs, "com.example.Foo", "hashCode", "--config", conf, "--inherited=false")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "encode", sampleAbs, "com.example.Foo")
	require.NoError(t, err)

	rec, err := classinfo.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "Foo", rec.TypeName())
	assert.Equal(t, 6, rec.MethodCount())

	file := filepath.Join(t.TempDir(), "foo.rfmd")
	require.NoError(t, os.WriteFile(file, []byte(out), 0o644))

	out, err = run(t, "decode", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Type Name: Foo\n")
	assert.Contains(t, out, "Package: com.example\n")
	assert.Contains(t, out, "Methods (6):")
	assert.Contains(t, out, "of create()Lcom.example.Foo;")
	assert.Contains(t, out, "value_ I")
	assert.Contains(t, out, "modifiers: public static")

	_, err = run(t, "encode", sampleAbs, "com.example.Nope")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.rfmd")
	require.NoError(t, os.WriteFile(bad, []byte("RFMD\x01"), 0o644))
	_, err = run(t, "decode", bad)
	assert.ErrorIs(t, err, classinfo.ErrTruncated)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", sampleAbs)
	assert.Error(t, err)
	assert.Contains(t, out, "com.example.Foo: methods location: unsupported\n")
	assert.Contains(t, out, "com.example.Foo: fields ghost: unsupported\n")
	assert.Contains(t, out, "Checked 6 class(es)")
	assert.Contains(t, out, "2 problem(s)")
}

func TestCheckUniverseOrder(t *testing.T) {
	logger = zap.NewNop()
	f, err := model.Load(sampleAbs)
	require.NoError(t, err)
	u, err := f.Universe()
	require.NoError(t, err)

	reports, err := checkUniverse(context.Background(), u, 3)
	require.NoError(t, err)
	var names []string
	for _, rep := range reports {
		names = append(names, rep.Name)
	}
	assert.Equal(t, []string{
		"java.lang.Object", "com.example.Base", "com.example.Named",
		"com.example.Foo", "com.example.Foo$Inner", "java.lang.String",
	}, names)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = checkUniverse(ctx, u, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", sampleAbs, "com.example.Foo")
	require.NoError(t, err)

	var dump ModelDump
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	require.Len(t, dump.Classes, 1)
	foo := dump.Classes[0]
	assert.Equal(t, "com.example.Foo", foo.QualifiedName)
	assert.Equal(t, "com.example.Base", foo.Superclass)
	assert.Len(t, foo.Constructors, 2)
	assert.Len(t, foo.Methods, 3)
	assert.Len(t, foo.Fields, 1)
	assert.Len(t, foo.Problems, 2)

	out, err = run(t, "dump", sampleAbs, "-f", "yaml")
	require.NoError(t, err)
	var ydump ModelDump
	require.NoError(t, yaml.Unmarshal([]byte(out), &ydump))
	assert.Len(t, ydump.Classes, 6)

	_, err = run(t, "dump", sampleAbs, "-f", "xml")
	assert.Error(t, err)
}

func TestBuildReportAliasedEntries(t *testing.T) {
	rec := classinfo.NewBuilder("Counter").
		AddMethod(classinfo.MethodSpec{Key: "reset", ReturnType: "V"}).
		AddMethod(classinfo.MethodSpec{Key: "reset", ReturnType: "V", Params: "I"}).
		AddField(classinfo.FieldSpec{Key: "count", Type: "J", Name: "total"}).
		AddField(classinfo.FieldSpec{Key: "total", Type: "J"}).
		MustBuild()
	data, err := classinfo.Encode(rec)
	require.NoError(t, err)

	u := reflection.NewUniverse()
	c, err := u.Define(reflection.ClassDef{
		Name: "p.Counter",
		InstanceMembers: []reflection.Member{
			{Key: "reset", Encoding: "v16@0:8"},
			{Key: "total", Encoding: "q"},
		},
		Metadata: reflection.Blob(data),
	})
	require.NoError(t, err)

	rep := buildReport(u.Resolver(), c)
	require.Len(t, rep.Fields, 1)
	assert.Equal(t, "total", rep.Fields[0].Key)
	assert.Equal(t, []EntryProblem{{Table: "fields", Key: "count", Reason: reasonUnsupported}}, rep.Problems)

	// Both method entries share a key but are reported from their own slots.
	require.Len(t, rep.Methods, 2)
	assert.Equal(t, "void p.Counter.reset()", rep.Methods[0].Declaration)
	assert.Equal(t, "void p.Counter.reset(int)", rep.Methods[1].Declaration)
}
