package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// ShellCommandRunner is the execution surface the bootstrap steps depend on.
// The NewShellCommand seam below is swapped out in tests.
type ShellCommandRunner interface {
	Run() error
	String() string
}

type ShellCommand struct {
	Name           string
	Args           []string
	EnvVars        []string
	InheritEnvVars bool

	ctx context.Context
	cmd *exec.Cmd
}

var NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) ShellCommandRunner {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := exec.CommandContext(ctx, name, args...)

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		slog.Info("Interrupt signal received, cancelling command")
		err := cmd.Process.Signal(syscall.SIGTERM)
		if err != nil {
			slog.Error("Failed to cancel command: " + err.Error())
		}
		return err
	}
	cmd.Env = envVars
	if inheritEnvVars {
		cmd.Env = append(cmd.Env, os.Environ()...)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &ShellCommand{
		Name:           name,
		Args:           args,
		EnvVars:        envVars,
		InheritEnvVars: inheritEnvVars,
		ctx:            ctx,
		cmd:            cmd,
	}
}

func (s *ShellCommand) Run() error {
	slog.Debug(fmt.Sprintf("Environment variables: %v", s.EnvVars))
	slog.Debug("Running cmd: " + s.String())
	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command '%s': %w", s.String(), err)
	}

	err := s.cmd.Wait()
	select {
	case <-s.ctx.Done():
		slog.Debug("Command was interrupted")
		return s.ctx.Err()
	default:
		if err != nil {
			return fmt.Errorf("command '%s' failed: %w", s.String(), err)
		}
		slog.Debug("Command finished successfully")
		return nil
	}
}

func (s *ShellCommand) String() string {
	return s.cmd.String()
}
