package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "brandgen",
	Short: "Generate the UniShare banner, social cards and icon set",
	Long: `brandgen draws the UniShare hero banner and app icon and writes every
derived asset to fixed paths under the output root:

  public/assets/hero-image.jpg, src/assets/hero-image.jpg  1200x630
  public/assets/og-image.jpg                               1200x600
  public/assets/twitter-card.jpg                            800x400
  public/icon-{16..512}x{16..512}.png                      8 sizes
  public/favicon.ico                                       16, 32, 48
  public/apple-touch-icon.png                               180x180

Run without arguments to generate everything.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "output root directory")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"brandgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[brandgen] "+format+"\n", args...)
	}
}

// resolveRoot returns the root given as the only positional argument,
// or the --root flag.
func resolveRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return rootDir
}
