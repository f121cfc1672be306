// Command sparkle runs the particle simulation in a window or a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sparkle",
	Short: "Interactive 2D particle simulation",
	Long: `sparkle animates a field of drifting particles joined by link lines.
The pointer can grab, bubble, or repulse particles, and clicks push or
remove them. Run it in a desktop window or straight in the terminal.`,
	SilenceUsage: true,
}

var flags = defaultSimFlags()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
}
