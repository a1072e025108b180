// Package launcher starts bound commands as detached processes.
package launcher

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"os"
	"os/exec"
	"sync"
	"syscall"
)

var ErrEmptyCommand = errors.New("empty command")

type Launcher struct {
	log *zap.SugaredLogger
	wg  sync.WaitGroup
}

func New(log *zap.SugaredLogger) *Launcher {
	return &Launcher{log: log}
}

// Launch starts argv in a new session without waiting for it. The exit
// status is collected in the background so finished children do not linger
// as zombies.
func (l *Launcher) Launch(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	err := cmd.Start()
	if err != nil {
		return 0, fmt.Errorf("start %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	l.wg.Add(1)
	go l.reap(cmd, pid)

	return pid, nil
}

func (l *Launcher) reap(cmd *exec.Cmd, pid int) {
	defer l.wg.Done()

	err := cmd.Wait()
	if err != nil {
		l.log.Debugw("command exited", "pid", pid, "command", cmd.Path, "error", err)
		return
	}
	l.log.Debugw("command exited", "pid", pid, "command", cmd.Path)
}

// Wait blocks until every launched command has exited.
func (l *Launcher) Wait() {
	l.wg.Wait()
}
