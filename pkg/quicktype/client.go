package quicktype

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/grovetools/core/command"
	"github.com/sirupsen/logrus"
)

const (
	DefaultExecutable = "quicktype"
	DefaultFallback   = "npx"
)

// Client runs a resolved quicktype command. When quicktype is reached through
// a package runner, prefix holds the wrapped command's own name.
type Client struct {
	executor command.Executor
	path     string
	prefix   []string
	logger   *logrus.Logger
}

// NewClient resolves quicktype by probing "<executable> --version" and, failing
// that, "<fallback> --version", in which case every invocation becomes
// "<fallback> quicktype ...". A probe counts as successful when the process
// starts, whatever its exit status. A nil executor means command.RealExecutor.
func NewClient(ctx context.Context, executor command.Executor, executable, fallback string, logger *logrus.Logger) (*Client, error) {
	if executor == nil {
		executor = &command.RealExecutor{}
	}
	if executable == "" {
		executable = DefaultExecutable
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	if logger == nil {
		logger = newLogger()
	}

	tried := []string{executable}
	err := probe(ctx, executor, executable)
	if err == nil {
		logger.WithField("executable", executable).Debug("resolved quicktype")
		return &Client{executor: executor, path: executable, logger: logger}, nil
	}
	logger.WithError(err).WithField("executable", executable).Debug("quicktype probe failed")

	tried = append(tried, fallback)
	if err = probe(ctx, executor, fallback); err == nil {
		logger.WithField("executable", fallback).Debug("resolved quicktype through package runner")
		return &Client{executor: executor, path: fallback, prefix: []string{DefaultExecutable}, logger: logger}, nil
	}
	return nil, &ExecutableNotFoundError{Tried: tried, Err: err}
}

// Command returns the program and the full argument list that run would use.
func (c *Client) Command(args ...string) (string, []string) {
	full := make([]string, 0, len(c.prefix)+len(args))
	full = append(full, c.prefix...)
	full = append(full, args...)
	return c.path, full
}

// run executes quicktype and returns whatever it wrote to stderr. The error is
// non-nil only when the process could not be started or did not exit cleanly.
// No timeout is applied beyond ctx.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	name, full := c.Command(args...)
	c.logger.WithFields(logrus.Fields{
		"command": name,
		"args":    full,
	}).Debug("running quicktype")

	var stdout, stderr bytes.Buffer
	cmd := c.executor.CommandContext(ctx, name, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if stdout.Len() > 0 {
		c.logger.WithField("stdout", stdout.String()).Debug("quicktype output")
	}
	return stderr.String(), err
}

func probe(ctx context.Context, executor command.Executor, name string) error {
	err := executor.CommandContext(ctx, name, "--version").Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
