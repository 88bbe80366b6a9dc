package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <levels.txt>",
	Short: "Serve the level browser over SSH",
	Long: `Start an SSH server that lets users browse the decoded level set.

Each SSH connection gets its own browser session over the same levels.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lrconv/host_key

Examples:
  lrconv serve levels.txt                    # Listen on :23235
  lrconv serve levels.txt --ssh :2222        # Listen on port 2222
  lrconv serve levels.txt --host-key ./key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// connectHint builds the ssh invocation matching the configured listen
// address, substituting localhost for wildcard hosts.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Sprintf("Connect with: ssh %s", addr)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("Connect with: ssh %s -p %s", host, port)
}

func runServe(_ *cobra.Command, args []string) {
	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decoded, ok, failed := reportBatch(decodeBatch(raws, 0))
	if ok == 0 {
		fmt.Fprintf(os.Stderr, "Error: no decodable levels in %s (%d failures)\n", args[0], failed)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, tui.NewPreviewItems(decoded))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %d levels on %s\n", ok, cfg.Address)
	fmt.Println(connectHint(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
