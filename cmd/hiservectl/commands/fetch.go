package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/hiaudio/hiserve/cmd/hiservectl/client"
	"github.com/hiaudio/hiserve/cmd/hiservectl/config"
	"github.com/hiaudio/hiserve/cmd/hiservectl/utils"
	"github.com/spf13/cobra"
)

// fetchCmd retrieves a single path from a running server
var fetchCmd = &cobra.Command{
	Use:   "fetch <path>",
	Short: "Fetch a path from the server and print the body",
	Args:  cobra.ExactArgs(1),
	RunE:  handleFetch,
}

// handleFetch GETs the requested path and writes the body to stdout.
// Non-200 responses are reported on stderr and exit non-zero so scripted
// fetches fail loudly.
func handleFetch(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	path := args[0]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	c := client.NewReceiverClient(config.Global.ServerAddr, config.Global.Timeout)

	body, status, err := c.Fetch(path)
	if err != nil {
		return err
	}

	if status != 200 {
		fmt.Fprintf(os.Stderr, "GET %s -> %d\n", path, status)
		os.Stdout.Write(body)
		return fmt.Errorf("server returned status %d", status)
	}

	os.Stdout.Write(body)
	return nil
}
