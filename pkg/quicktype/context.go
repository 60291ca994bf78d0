package quicktype

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/core/command"
	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/qtschema/pkg/langs"
	"github.com/grovetools/qtschema/pkg/schema"
)

// Context is one code generation session: a schema accumulator plus the
// settings used to hand the merged schema to quicktype. It is not safe for
// concurrent use.
type Context struct {
	baseName     string
	schema       *schema.Accumulator
	reflector    *jsonschema.Reflector
	overrideArgs []string
	logger       *logrus.Logger
	tempDir      string
	prefix       string
	idFunc       func() string
	executable   string
	fallback     string
	executor     command.Executor
	validate     bool
}

// NewContext creates a session whose top-level generated type is named baseName.
func NewContext(baseName string, opts ...Option) *Context {
	c := &Context{
		baseName:   baseName,
		schema:     schema.New(),
		reflector:  schema.NewReflector(),
		logger:     newLogger(),
		prefix:     DefaultPrefix,
		idFunc:     ProcessID,
		executable: DefaultExecutable,
		fallback:   DefaultFallback,
		executor:   &command.RealExecutor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseName returns the name passed to quicktype's -t flag.
func (c *Context) BaseName() string {
	return c.baseName
}

// Schema exposes the session's accumulator.
func (c *Context) Schema() *schema.Accumulator {
	return c.schema
}

// AddSchema pushes a JSON Schema fragment. See schema.Accumulator.Push.
func (c *Context) AddSchema(fragment string) error {
	return c.schema.Push(fragment)
}

// MustAddSchema panics if the fragment is malformed.
func (c *Context) MustAddSchema(fragment string) {
	c.schema.MustPush(fragment)
}

// AddType reflects v's Go type into a fragment and pushes it.
func (c *Context) AddType(v any) error {
	fragment, err := schema.Reflect(c.reflector, v)
	if err != nil {
		return err
	}
	return c.schema.Push(fragment)
}

// Args returns the quicktype arguments for lang, given the schema and output
// paths: the fixed input/output flags followed by the language flags or the
// override list.
func (c *Context) Args(lang langs.Language, schemaPath, outPath string) []string {
	args := []string{
		"--quiet",
		"-t", c.baseName,
		"-o", outPath,
		"--src-lang", "schema",
		schemaPath,
	}
	if c.overrideArgs != nil {
		return append(args, c.overrideArgs...)
	}
	return append(args, langs.BuildArgs(lang)...)
}

// Paths returns the temporary schema and output paths for one run.
func (c *Context) Paths(lang langs.Language, id string) (schemaPath, outPath string) {
	dir := c.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	schemaPath = filepath.Join(dir, fmt.Sprintf("%s-schema-%s.json", c.prefix, id))
	outPath = filepath.Join(dir, fmt.Sprintf("%s-code-%s-%s", c.prefix, lang.Name(), id))
	return schemaPath, outPath
}

// Finish writes the merged schema to a temporary file, runs quicktype for
// lang and returns the generated source. Both temporary files are removed
// before returning, whatever the outcome.
//
// Errors: *ExecutableNotFoundError, *GenerationFailedError when quicktype
// writes to stderr or exits non-zero, *OutputMissingError when no output file
// appears, or a wrapped I/O error.
func (c *Context) Finish(ctx context.Context, lang langs.Language) (string, error) {
	if c.validate {
		if err := c.schema.Validate(); err != nil {
			return "", err
		}
	}

	schemaPath, outPath := c.Paths(lang, c.idFunc())
	data, err := c.schema.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to serialize schema: %w", err)
	}
	defer c.cleanup(schemaPath, outPath)

	// A stale file from an earlier run would mask a missing output.
	_ = os.Remove(outPath)
	if err := os.WriteFile(schemaPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}

	client, err := NewClient(ctx, c.executor, c.executable, c.fallback, c.logger)
	if err != nil {
		return "", err
	}

	c.logger.WithFields(logrus.Fields{
		"language": lang.Name(),
		"schema":   schemaPath,
		"output":   outPath,
	}).Debug("generating code")

	stderr, err := client.run(ctx, c.Args(lang, schemaPath, outPath)...)
	if stderr != "" {
		return "", &GenerationFailedError{Language: lang.Name(), Stderr: stderr, Err: err}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &GenerationFailedError{Language: lang.Name(), Err: err}
		}
		return "", fmt.Errorf("failed to run quicktype: %w", err)
	}

	if _, err := os.Stat(outPath); errors.Is(err, os.ErrNotExist) {
		return "", &OutputMissingError{Language: lang.Name(), Path: outPath}
	}
	output, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to read generated code: %w", err)
	}
	return string(output), nil
}

// MustFinish is Finish for callers that treat every generation failure as fatal.
func (c *Context) MustFinish(ctx context.Context, lang langs.Language) string {
	out, err := c.Finish(ctx, lang)
	if err != nil {
		panic(err)
	}
	return out
}

func (c *Context) cleanup(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.WithError(err).WithField("path", p).Warn("failed to remove temporary file")
		}
	}
}
