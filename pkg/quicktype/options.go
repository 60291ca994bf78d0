package quicktype

import (
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/grovetools/core/command"
	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
)

// DefaultPrefix starts every temporary file name.
const DefaultPrefix = "quick-type"

// Option configures a Context.
type Option func(*Context)

// WithOverrideArgs replaces the translated language flags with args. The fixed
// input/output flags are still passed.
func WithOverrideArgs(args ...string) Option {
	return func(c *Context) {
		c.overrideArgs = append(make([]string, 0, len(args)), args...)
	}
}

// WithLogger sets the logger used for command tracing and cleanup warnings.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTempDir places temporary files in dir instead of os.TempDir().
func WithTempDir(dir string) Option {
	return func(c *Context) {
		c.tempDir = dir
	}
}

// WithPrefix changes the temporary file name prefix.
func WithPrefix(prefix string) Option {
	return func(c *Context) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithIDFunc sets the generator for the unique part of temporary file names.
// The default is the process ID, which only separates concurrent processes;
// long-running services should pass UUIDFunc or their own generator.
func WithIDFunc(fn func() string) Option {
	return func(c *Context) {
		if fn != nil {
			c.idFunc = fn
		}
	}
}

// WithExecutable sets the primary quicktype command.
func WithExecutable(name string) Option {
	return func(c *Context) {
		c.executable = name
	}
}

// WithFallback sets the package runner tried when the primary command fails.
func WithFallback(name string) Option {
	return func(c *Context) {
		c.fallback = name
	}
}

// WithCommandExecutor sets how quicktype processes are created. The default is
// command.RealExecutor.
func WithCommandExecutor(executor command.Executor) Option {
	return func(c *Context) {
		if executor != nil {
			c.executor = executor
		}
	}
}

// WithReflector replaces the reflector used by AddType.
func WithReflector(r *jsonschema.Reflector) Option {
	return func(c *Context) {
		if r != nil {
			c.reflector = r
		}
	}
}

// WithValidation compiles the merged schema before each generator run.
func WithValidation(enabled bool) Option {
	return func(c *Context) {
		c.validate = enabled
	}
}

// ProcessID returns the current process ID as a string.
func ProcessID() string {
	return strconv.Itoa(os.Getpid())
}

// UUIDFunc returns a random UUID for each call.
func UUIDFunc() string {
	return uuid.NewString()
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}
