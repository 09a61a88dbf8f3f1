package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/brandgen/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [root]",
	Short: "Display statistics for a generated asset tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(filepath.Join(resolveRoot(args), manifest.FileName))
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), m)
	return nil
}

func printStats(w io.Writer, m *manifest.Manifest) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Manifest version: %d\n", m.Version)
	fmt.Fprintf(w, "  Generated:        %s\n", m.GeneratedAt)
	fmt.Fprintf(w, "  Profile:          %s\n", m.Profile)
	fmt.Fprintln(w)

	s := m.Stats
	fmt.Fprintf(w, "  Total artifacts:  %d\n", s.TotalArtifacts)
	fmt.Fprintf(w, "  Output size:      %s\n", formatBytes(s.TotalBytes))
	fmt.Fprintln(w)

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Artifacts {
		fs := formatStats[a.Format]
		fs.count++
		fs.bytes += a.Size
		formatStats[a.Format] = fs
	}
	fmt.Fprintln(w, "  Format breakdown:")
	for _, f := range []string{"jpeg", "png", "ico"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Fprintf(w, "    %-5s  %3d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Fprintln(w)

	// Largest files first.
	arts := append([]manifest.Artifact(nil), m.Artifacts...)
	sort.SliceStable(arts, func(i, j int) bool { return arts[i].Size > arts[j].Size })
	fmt.Fprintln(w, "  Files:")
	for _, a := range arts {
		dims := fmt.Sprintf("%dx%d", a.Width, a.Height)
		if len(a.Frames) > 0 {
			dims = fmt.Sprintf("%d frames", len(a.Frames))
		}
		fmt.Fprintf(w, "    %-34s %10s  %9s\n", a.Path, dims, formatBytes(a.Size))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Fonts:")
	for _, f := range m.Fonts {
		state := "loaded"
		if f.Fallback {
			state = "fallback"
		}
		fmt.Fprintf(w, "    %-12s %5.0fpt  %-8s  %s\n", f.Role, f.Size, state, f.Path)
	}
	if s.FallbackFonts > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  ⚠ %d font(s) fell back to the bundled Go font; glyph shapes differ from DejaVu Sans\n", s.FallbackFonts)
	}
	fmt.Fprintln(w)
}
