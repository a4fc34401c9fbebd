package script

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Interpreter runs scripts through an external command-line program.
type Interpreter struct {
	path string
	args []string
	dir  string
	env  []string
}

// Option mutates an Interpreter at construction time.
type Option func(*Interpreter)

// WithArgs sets arguments passed to the interpreter on every run.
func WithArgs(args ...string) Option {
	return func(in *Interpreter) {
		in.args = append(in.args, args...)
	}
}

// WithDir sets the working directory of the spawned process.
func WithDir(dir string) Option {
	return func(in *Interpreter) {
		in.dir = dir
	}
}

// WithEnv sets the environment of the spawned process in "KEY=value"
// form, replacing the inherited environment.
func WithEnv(env ...string) Option {
	return func(in *Interpreter) {
		in.env = append(in.env, env...)
	}
}

// New returns an Interpreter for the binary at path.
func New(path string, opts ...Option) *Interpreter {
	in := &Interpreter{path: path}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

// Path returns the interpreter binary path.
func (in *Interpreter) Path() string {
	return in.path
}

// Result holds the output streams of one interpreter run.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Run pipes source to the interpreter's standard input and waits for it
// to exit. Both output streams are captured and returned even when the
// run fails, so callers can inspect diagnostics the interpreter printed
// before dying. Cancelling ctx kills the process.
func (in *Interpreter) Run(ctx context.Context, source string) (Result, error) {
	cmd := exec.CommandContext(ctx, in.path, in.args...)
	cmd.Stdin = strings.NewReader(source)
	cmd.Dir = in.dir
	if in.env != nil {
		cmd.Env = in.env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("run %s: %w", in.path, ctxErr)
		}
		return res, fmt.Errorf("run %s: %w", in.path, err)
	}
	return res, nil
}
