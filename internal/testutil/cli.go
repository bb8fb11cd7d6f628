package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// SetupCLITest creates an App over in-memory storage with the default board
// and returns both the App and the storage so tests can inspect what was saved
func SetupCLITest(t *testing.T) (*app.App, *storage.Memory) {
	t.Helper()
	return SetupTestApp(t)
}

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// wrote to stdout. Stdin reads from input when non-empty.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input ...string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(strings.Join(input, "\n")))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return stdout.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
