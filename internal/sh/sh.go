package sh

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// WaitDelay bounds how long output pipes are drained after the process is killed; tools like
// git leave helper processes holding the pipes open.
const WaitDelay = 2 * time.Second

type DirectoryPath string

// Command is one external tool invocation. Args are passed as-is, never through a shell.
type Command struct {
	Name string
	Args []string
	Env  []string // appended to the process environment
}

func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

func (c Command) WithEnv(env ...string) Command {
	c.Env = append(append([]string{}, c.Env...), env...)
	return c
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExecuteCommand runs command in cwd and returns its stdout without trailing newlines. The context deadline
// bounds the invocation; failures are returned as *ToolNotFoundError, *TimeoutError or *ExitError.
func ExecuteCommand(ctx context.Context, cwd DirectoryPath, command Command) (string, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = string(cwd)
	cmd.Env = append(os.Environ(), command.Env...)
	cmd.WaitDelay = WaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimRight(stdout.String(), "\r\n"), nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return "", &ToolNotFoundError{Tool: command.Name, Err: err}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return "", &TimeoutError{Command: command.String(), Err: ctxErr}
		}
		return "", ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &ExitError{
			Command: command.String(),
			Code:    exitErr.ExitCode(),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	// Dir missing and similar start failures.
	return "", err
}
