//go:build !unix

package platform

import "os/exec"

// killProcessGroup is a no-op; WaitDelay still bounds the wait
func killProcessGroup(cmd *exec.Cmd) {}
