package quicktype

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grovetools/core/command"
	"go.uber.org/goleak"

	"github.com/grovetools/qtschema/pkg/langs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeQuicktype records its arguments, one per line, into the -o file. The
// FAKE_QT_MODE environment variable makes it misbehave on purpose.
const fakeQuicktype = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "fake 0.0.0"
  exit 0
fi
if [ "$1" = "quicktype" ]; then
  shift
fi
case "$FAKE_QT_MODE" in
  stderr)
    echo "Error: schema is broken" >&2
    exit 1
    ;;
  silent-exit)
    exit 3
    ;;
  no-output)
    exit 0
    ;;
esac
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then
    out="$a"
  fi
  prev="$a"
done
printf '%s\n' "$@" > "$out"
`

func writeFake(t *testing.T, dir, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake generator requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available in PATH")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(fakeQuicktype), 0755); err != nil {
		t.Fatalf("Failed to write fake generator: %v", err)
	}
	return path
}

func newTestContext(t *testing.T, opts ...Option) (*Context, string) {
	t.Helper()
	binDir := t.TempDir()
	tmpDir := t.TempDir()
	fake := writeFake(t, binDir, "quicktype")
	base := []Option{
		WithExecutable(fake),
		WithFallback(filepath.Join(binDir, "missing-npx")),
		WithTempDir(tmpDir),
		WithIDFunc(func() string { return "test" }),
	}
	return NewContext("MyData", append(base, opts...)...), tmpDir
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read temp dir: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("Expected temporary files to be removed, found %v", names)
	}
}

func TestFinish(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "")
	ctx := context.Background()
	qt, tmpDir := newTestContext(t)
	qt.MustAddSchema(`{"title":"Foo","type":"object"}`)

	out, err := qt.Finish(ctx, langs.TypeScript{JustTypes: true})
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	got := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"--quiet",
		"-t", "MyData",
		"-o", filepath.Join(tmpDir, "quick-type-code-typescript-test"),
		"--src-lang", "schema",
		filepath.Join(tmpDir, "quick-type-schema-test.json"),
		"-l", "typescript", "--just-types",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generator arguments mismatch (-want +got):\n%s", diff)
	}

	assertEmptyDir(t, tmpDir)
}

func TestFinishOverrideArgs(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "")
	qt, _ := newTestContext(t, WithOverrideArgs("-l", "kotlin", "--framework", "just-types"))
	qt.MustAddSchema(`{"title":"Foo"}`)

	out, err := qt.Finish(context.Background(), langs.Go{Package: "ignored"})
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	tail := got[len(got)-4:]
	if diff := cmp.Diff([]string{"-l", "kotlin", "--framework", "just-types"}, tail); diff != "" {
		t.Errorf("override arguments mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(out, "ignored") {
		t.Error("translated language arguments should be replaced by the override")
	}
}

func TestFinishFallback(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "")
	binDir := t.TempDir()
	tmpDir := t.TempDir()
	runner := writeFake(t, binDir, "npx")

	qt := NewContext("MyData",
		WithExecutable(filepath.Join(binDir, "no-quicktype")),
		WithFallback(runner),
		WithTempDir(tmpDir),
	)
	qt.MustAddSchema(`{"title":"Foo"}`)

	client, err := NewClient(context.Background(), nil, filepath.Join(binDir, "no-quicktype"), runner, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	name, args := client.Command("--quiet")
	if name != runner {
		t.Errorf("Expected fallback runner %s, got %s", runner, name)
	}
	if diff := cmp.Diff([]string{"quicktype", "--quiet"}, args); diff != "" {
		t.Errorf("wrapped arguments mismatch (-want +got):\n%s", diff)
	}

	out, err := qt.Finish(context.Background(), langs.Crystal{})
	if err != nil {
		t.Fatalf("Finish through fallback failed: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "-l\ncrystal") {
		t.Errorf("unexpected generator arguments: %q", out)
	}
	assertEmptyDir(t, tmpDir)
}

// recordingExecutor creates real commands and remembers each one.
type recordingExecutor struct {
	command.RealExecutor
	calls [][]string
}

func (e *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.calls = append(e.calls, append([]string{filepath.Base(name)}, args...))
	return e.RealExecutor.CommandContext(ctx, name, args...)
}

func TestFinishUsesCommandExecutor(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "")
	rec := &recordingExecutor{}
	qt, _ := newTestContext(t, WithCommandExecutor(rec))
	qt.MustAddSchema(`{"title":"Foo"}`)

	if _, err := qt.Finish(context.Background(), langs.Haskell{}); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if len(rec.calls) != 2 {
		t.Fatalf("Expected a version check and a generator run, got %v", rec.calls)
	}
	if diff := cmp.Diff([]string{"quicktype", "--version"}, rec.calls[0]); diff != "" {
		t.Errorf("version check mismatch (-want +got):\n%s", diff)
	}
	last := rec.calls[1]
	if diff := cmp.Diff([]string{"-l", "haskell"}, last[len(last)-2:]); diff != "" {
		t.Errorf("generator arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestFinishExecutableNotFound(t *testing.T) {
	dir := t.TempDir()
	tmpDir := t.TempDir()
	qt := NewContext("MyData",
		WithExecutable(filepath.Join(dir, "no-quicktype")),
		WithFallback(filepath.Join(dir, "no-npx")),
		WithTempDir(tmpDir),
	)
	qt.MustAddSchema(`{"title":"Foo"}`)

	_, err := qt.Finish(context.Background(), langs.TypeScript{})
	var notFound *ExecutableNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected ExecutableNotFoundError, got %v", err)
	}
	if len(notFound.Tried) != 2 {
		t.Errorf("Expected two resolution attempts, got %v", notFound.Tried)
	}
	assertEmptyDir(t, tmpDir)

	if qt.Schema().Len() != 1 {
		t.Error("a failed run must not change the accumulated schema")
	}
}

func TestFinishGenerationFailed(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "stderr")
	qt, tmpDir := newTestContext(t)
	qt.MustAddSchema(`{"title":"Foo"}`)

	_, err := qt.Finish(context.Background(), langs.Ruby{})
	var genErr *GenerationFailedError
	if !errors.As(err, &genErr) {
		t.Fatalf("Expected GenerationFailedError, got %v", err)
	}
	if !strings.Contains(genErr.Stderr, "schema is broken") {
		t.Errorf("Expected stderr to be carried verbatim, got %q", genErr.Stderr)
	}
	if !strings.HasPrefix(err.Error(), "quicktype Error: schema is broken") {
		t.Errorf("unexpected error text: %v", err)
	}
	assertEmptyDir(t, tmpDir)
}

func TestFinishSilentExit(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "silent-exit")
	qt, _ := newTestContext(t)
	qt.MustAddSchema(`{"title":"Foo"}`)

	_, err := qt.Finish(context.Background(), langs.Ruby{})
	var genErr *GenerationFailedError
	if !errors.As(err, &genErr) {
		t.Fatalf("Expected GenerationFailedError, got %v", err)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("Expected the exit error to be wrapped, got %v", err)
	}
}

func TestFinishOutputMissing(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "no-output")
	qt, tmpDir := newTestContext(t)
	qt.MustAddSchema(`{"title":"Foo"}`)

	_, err := qt.Finish(context.Background(), langs.Swift{})
	var missing *OutputMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected OutputMissingError, got %v", err)
	}
	if missing.Path != filepath.Join(tmpDir, "quick-type-code-swift-test") {
		t.Errorf("unexpected output path %s", missing.Path)
	}

	if !panics(func() { qt.MustFinish(context.Background(), langs.Swift{}) }) {
		t.Error("MustFinish should panic on failure")
	}
}

func TestFinishValidation(t *testing.T) {
	t.Setenv("FAKE_QT_MODE", "")
	qt, tmpDir := newTestContext(t, WithValidation(true))
	qt.MustAddSchema(`{"title":"Foo","properties":{"x":{"$ref":"#/definitions/Nope"}}}`)

	if _, err := qt.Finish(context.Background(), langs.Go{}); err == nil {
		t.Fatal("Expected validation error for dangling reference")
	}
	assertEmptyDir(t, tmpDir)
}

func TestPaths(t *testing.T) {
	qt := NewContext("MyData", WithTempDir("/work"), WithPrefix("qt"))
	schemaPath, outPath := qt.Paths(langs.CSharp{}, "42")
	if schemaPath != filepath.Join("/work", "qt-schema-42.json") {
		t.Errorf("schema path = %s", schemaPath)
	}
	if outPath != filepath.Join("/work", "qt-code-csharp-42") {
		t.Errorf("output path = %s", outPath)
	}

	a, b := UUIDFunc(), UUIDFunc()
	if a == b || a == "" {
		t.Errorf("UUIDFunc should return unique values, got %q and %q", a, b)
	}
	if ProcessID() == "" {
		t.Error("ProcessID is empty")
	}
}

func TestAddType(t *testing.T) {
	type Widget struct {
		Name string `json:"name"`
	}
	qt := NewContext("MyData")
	if err := qt.AddType(Widget{}); err != nil {
		t.Fatalf("AddType failed: %v", err)
	}
	if _, ok := qt.Schema().Definitions()["Widget"]; !ok {
		t.Error("Expected Widget definition")
	}
	if err := qt.AddSchema("{"); err == nil {
		t.Error("Expected error for malformed fragment")
	}
}

func TestFinishWithRealQuicktype(t *testing.T) {
	if _, err := exec.LookPath("quicktype"); err != nil {
		t.Skip("quicktype not available in PATH, skipping integration test")
	}

	qt := NewContext("MyData", WithIDFunc(UUIDFunc))
	qt.MustAddSchema(`{"title":"Foo","type":"object","properties":{"id":{"type":"integer"}},"required":["id"]}`)

	out, err := qt.Finish(context.Background(), langs.TypeScript{JustTypes: true})
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if !strings.Contains(out, "Foo") {
		t.Errorf("Expected generated code to mention Foo, got:\n%s", out)
	}
}

func panics(fn func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	fn()
	return false
}
