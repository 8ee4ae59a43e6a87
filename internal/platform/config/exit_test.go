package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/leasedesk/leasedesk/internal/platform/config"
)

// os.Exit cannot be intercepted in-process, so the assertion runs in a child.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("LEASEDESK_TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "lease store unavailable")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "LEASEDESK_TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: lease store unavailable") {
		t.Fatalf("expected stderr to contain message, got %q", string(out))
	}
}
