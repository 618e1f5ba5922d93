// Package launcher starts the managed application, optionally through a wrapper such as wine or proton.
package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/google/shlex"
	log "github.com/sirupsen/logrus"
)

// Command builds the command starting exe. With empty launchParameters exe runs directly;
// otherwise the first word is the wrapper program and the remaining words precede exe as arguments.
// Words follow shell quoting rules, so `wine --prefix "My Games"` keeps "My Games" together.
func Command(exe, launchParameters string) (*exec.Cmd, error) {
	words, err := shlex.Split(launchParameters)
	if err != nil {
		return nil, fmt.Errorf("parse launch parameters %q: %w", launchParameters, err)
	}

	var cmd *exec.Cmd
	if len(words) == 0 {
		cmd = exec.Command(exe)
	} else {
		args := append(words[1:], exe)
		cmd = exec.Command(words[0], args...)
	}

	cmd.Dir = filepath.Dir(exe)
	return cmd, nil
}

// Start launches the managed application and detaches from it
func Start(exe, launchParameters string) error {
	cmd, err := Command(exe, launchParameters)
	if err != nil {
		return err
	}
	log.Infof("launching: %s", cmd.String())

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", exe, err)
	}

	log.Infof("managed application started with PID %d", cmd.Process.Pid)
	if err := cmd.Process.Release(); err != nil {
		log.Warnf("failed to release launched process: %v", err)
	}
	return nil
}
