// Package daemonctl manages the pid file of a running seppun-kb instance and
// sends it control signals.
package daemonctl

import (
	"errors"
	"fmt"
	"github.com/sevlyar/go-daemon"
	"golang.org/x/sys/unix"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrNotRunning     = errors.New("seppun-kb is not running")
	ErrAlreadyRunning = errors.New("seppun-kb is already running")
)

const (
	pidFilePerm = 0o644
	logFilePerm = 0o640
)

// Marker is the pid file of the current process. Removing it releases the
// lock and deletes the file.
type Marker struct {
	path   string
	remove func() error
}

func (m *Marker) Path() string {
	return m.path
}

func (m *Marker) Remove() error {
	if m.remove == nil {
		return nil
	}
	err := m.remove()
	if err != nil {
		return fmt.Errorf("remove %s: %w", m.path, err)
	}
	m.remove = nil
	return nil
}

// CreateMarker writes and locks the pid file for a process running in the
// foreground.
func CreateMarker(path string) (*Marker, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("create pid file directory: %w", err)
	}

	lock, err := daemon.CreatePidFile(path, pidFilePerm)
	if errors.Is(err, daemon.ErrWouldBlock) {
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("create pid file %s: %w", path, err)
	}

	return &Marker{path: path, remove: lock.Remove}, nil
}

// Daemonize re-executes the current program in the background with stdout
// and stderr redirected to logFile. In the parent it returns isParent=true and
// a nil marker; the parent is expected to exit. In the child it returns the
// marker of the pid file written by the daemon.
func Daemonize(pidFile, logFile string) (marker *Marker, isParent bool, err error) {
	for _, path := range []string{pidFile, logFile} {
		if path == "" {
			continue
		}
		err = os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			return nil, false, fmt.Errorf("create directory for %s: %w", path, err)
		}
	}

	ctx := &daemon.Context{
		PidFileName: pidFile,
		PidFilePerm: pidFilePerm,
		LogFileName: logFile,
		LogFilePerm: logFilePerm,
		Umask:       0o27,
	}

	child, err := ctx.Reborn()
	if errors.Is(err, daemon.ErrWouldBlock) {
		return nil, false, ErrAlreadyRunning
	}
	if err != nil {
		return nil, false, fmt.Errorf("daemonize: %w", err)
	}
	if child != nil {
		return nil, true, nil
	}

	return &Marker{path: pidFile, remove: ctx.Release}, false, nil
}

// Find returns the pid recorded in the pid file if that process is alive.
func Find(path string) (int, error) {
	pid, err := daemon.ReadPidFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNotRunning
	}
	if err != nil {
		return 0, fmt.Errorf("read pid file %s: %w", path, err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("read pid file %s: invalid pid %d", path, pid)
	}

	err = unix.Kill(pid, 0)
	switch {
	case err == nil, errors.Is(err, unix.EPERM):
		return pid, nil
	case errors.Is(err, unix.ESRCH):
		return 0, ErrNotRunning
	default:
		return 0, fmt.Errorf("check pid %d: %w", pid, err)
	}
}

// Stop asks the running instance to release its grabs and exit.
func Stop(path string) (int, error) {
	return send(path, unix.SIGTERM)
}

// Reload asks the running instance to re-read its keymap.
func Reload(path string) (int, error) {
	return send(path, unix.SIGHUP)
}

func send(path string, sig unix.Signal) (int, error) {
	pid, err := Find(path)
	if err != nil {
		return 0, err
	}

	err = unix.Kill(pid, sig)
	if errors.Is(err, unix.ESRCH) {
		return 0, ErrNotRunning
	}
	if err != nil {
		return 0, fmt.Errorf("send %s to %d: %w", unix.SignalName(sig), pid, err)
	}

	return pid, nil
}
