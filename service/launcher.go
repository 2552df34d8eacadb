package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"vtb/config"
	"vtb/system/command"
)

// Launcher starts the backend web process. It performs no supervision:
// the process runs in the foreground and its exit status is the
// launcher's result. Sequencing before the launcher, not logic inside
// it, guarantees the listener never binds after a failed schema init.
type Launcher struct {
	Command []string
	Host    string
	Port    int
}

func NewLauncher(cfg config.ServiceConfig) (*Launcher, error) {
	if len(cfg.Command) == 0 {
		return nil, fmt.Errorf("service command is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid service port %d", cfg.Port)
	}
	return &Launcher{
		Command: cfg.Command,
		Host:    cfg.Host,
		Port:    cfg.Port,
	}, nil
}

// Run blocks until the service process exits. The bind address is passed
// as --host/--port flags appended to the configured command.
func (l *Launcher) Run() error {
	args := append([]string{}, l.Command[1:]...)
	args = append(args, "--host", l.Host, "--port", strconv.Itoa(l.Port))

	slog.Info("Starting service: " + strings.Join(l.Command, " ") + " on " + l.Host + ":" + strconv.Itoa(l.Port))

	s := command.NewShellCommand(l.Command[0], args, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf("service process failed: %w", err)
	}

	return nil
}
