package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// ErrAlreadyRunning is returned by Acquire while another live process holds the file
type ErrAlreadyRunning struct {
	PID int
}

func (e *ErrAlreadyRunning) Error() string {
	return fmt.Sprintf("daemon is already running (PID %d)", e.PID)
}

// PIDFile manages a process ID file for daemon single-instance enforcement
type PIDFile struct {
	path string
}

// New creates a new PIDFile manager
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Path returns the PID file location
func (p *PIDFile) Path() string {
	return p.path
}

// Acquire writes the current PID, replacing stale or unreadable files.
// Returns ErrAlreadyRunning if the recorded process is still alive.
func (p *PIDFile) Acquire() error {
	pid, err := p.ReadPID()
	switch {
	case err == nil && pid != os.Getpid() && isProcessRunning(pid):
		return &ErrAlreadyRunning{PID: pid}
	case err == nil, errors.Is(err, errInvalidPID):
		_ = os.Remove(p.path)
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read existing PID file: %w", err)
	}

	if err := os.WriteFile(p.path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	return nil
}

// Release removes the PID file
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

var errInvalidPID = errors.New("invalid PID file content")

// ReadPID returns the process ID recorded in the file
func (p *PIDFile) ReadPID() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, errInvalidPID
	}
	return pid, nil
}

// KillExisting sends SIGTERM to the recorded process and waits up to five seconds
// for it to exit, then removes the file
func (p *PIDFile) KillExisting() error {
	pid, err := p.ReadPID()
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, errInvalidPID) {
			return p.Release()
		}
		return fmt.Errorf("failed to read existing PID file: %w", err)
	}

	if pid == os.Getpid() || !isProcessRunning(pid) {
		return p.Release()
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for isProcessRunning(pid) {
		if time.Now().After(deadline) {
			return fmt.Errorf("process %d did not exit after SIGTERM", pid)
		}
		time.Sleep(100 * time.Millisecond)
	}

	return p.Release()
}

// isProcessRunning checks if a process with the given PID is running
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// On Unix FindProcess always succeeds; signal 0 checks existence
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}

	// EPERM means the process exists but belongs to someone else
	return errors.Is(err, syscall.EPERM)
}
