package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/AnyUserName/brandgen/internal/manifest"
	"github.com/AnyUserName/brandgen/internal/pipeline"
	"github.com/AnyUserName/brandgen/internal/profile"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("resolve output root: %w", err)
	}

	prof := profile.Default()
	logVerbose("root:    %s", absRoot)
	logVerbose("profile: %s (quality=%d)", prof.Name, prof.Quality)

	out := cmd.OutOrStdout()
	m, err := pipeline.New(pipeline.Config{
		RootDir: absRoot,
		Profile: prof,
		Verbose: verbose,
		Out:     out,
		Log:     cmd.ErrOrStderr(),
	}).Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absRoot, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printReport(out, m, time.Since(start))
	return nil
}

func printReport(w io.Writer, m *manifest.Manifest, elapsed time.Duration) {
	fmt.Fprintln(w, "All images created successfully!")
	fmt.Fprintln(w, "Files created:")
	for _, a := range m.Artifacts {
		label := ""
		if a.Label != "" {
			label = " (" + a.Label + ")"
		}
		fmt.Fprintf(w, "- /%s%s\n", a.Path, label)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Artifacts:   %d\n", m.Stats.TotalArtifacts)
	fmt.Fprintf(w, "  Output size: %s\n", formatBytes(m.Stats.TotalBytes))
	if m.Stats.FallbackFonts > 0 {
		fmt.Fprintf(w, "  Fonts:       %d of %d fell back to the bundled font\n", m.Stats.FallbackFonts, len(m.Fonts))
	}
	fmt.Fprintf(w, "  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  Manifest:    %s\n", manifest.FileName)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
