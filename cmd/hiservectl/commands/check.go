package commands

import (
	"fmt"

	"github.com/hiaudio/hiserve/cmd/hiservectl/client"
	"github.com/hiaudio/hiserve/cmd/hiservectl/config"
	"github.com/hiaudio/hiserve/cmd/hiservectl/utils"
	"github.com/hiaudio/hiserve/internal/netutil"
	"github.com/spf13/cobra"
)

// checkCmd verifies the serving contract of a running receiver server
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a running server delivers the receiver page with correct CORS headers",
	RunE:  handleCheck,
}

// handleCheck runs the contract check and reports the result. Exits non-zero
// when the server is unreachable or violates the contract so the command is
// usable from scripts and health probes.
func handleCheck(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	c := client.NewReceiverClient(config.Global.ServerAddr, config.Global.Timeout)

	report, err := c.Check()
	if err != nil {
		if netutil.IsConnectionRefusedError(err) {
			return fmt.Errorf("no server listening at %s (is hiserved running?)", config.Global.ServerAddr)
		}
		return err
	}

	if !report.Healthy() {
		fmt.Printf("✗ %s violates the serving contract:\n", report.ServerAddr)
		for _, v := range report.Violations {
			fmt.Printf("  - %s\n", v)
		}
		return fmt.Errorf("%d contract violation(s)", len(report.Violations))
	}

	fmt.Printf("✓ %s is serving %s (%d bytes), CORS headers OK\n",
		report.ServerAddr, config.IndexFile, report.PageBytes)
	if config.Global.Verbose {
		fmt.Printf("  GET / -> %d\n", report.PageStatus)
		fmt.Printf("  missing-path probe -> %d\n", report.MissingStatus)
	}
	return nil
}
