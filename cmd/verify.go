package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/brandgen/internal/encoder"
	"github.com/AnyUserName/brandgen/internal/hasher"
	"github.com/AnyUserName/brandgen/internal/manifest"
	"github.com/AnyUserName/brandgen/internal/profile"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [root]",
	Short: "Check generated assets against the build manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	root := resolveRoot(args)
	m, err := manifest.ReadJSON(filepath.Join(root, manifest.FileName))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errs := validateManifest(m, root)
	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Manifest is valid")
		fmt.Fprintf(out, "  ✓ %d artifacts, all files present and unchanged\n", len(m.Artifacts))
		return nil
	}

	fmt.Fprintf(out, "  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("verification failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, root string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	// Every output of the profile must be recorded.
	if prof, ok := profile.Get(m.Profile); ok {
		for _, p := range prof.Paths() {
			if _, found := m.Lookup(p); !found {
				errs = append(errs, fmt.Sprintf("%s: not recorded in manifest", p))
			}
		}
	} else {
		errs = append(errs, fmt.Sprintf("unknown profile %q", m.Profile))
	}

	seen := map[string]bool{}
	var total int64
	for i, a := range m.Artifacts {
		if a.Path == "" {
			errs = append(errs, fmt.Sprintf("artifact[%d]: missing path", i))
			continue
		}
		if seen[a.Path] {
			errs = append(errs, fmt.Sprintf("artifact[%d]: duplicate path %q", i, a.Path))
		}
		seen[a.Path] = true
		total += a.Size

		path := filepath.Join(root, filepath.FromSlash(a.Path))
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: file not found", a.Path))
			continue
		}
		if info.Size() != a.Size {
			errs = append(errs, fmt.Sprintf("%s: size mismatch: manifest=%d, disk=%d", a.Path, a.Size, info.Size()))
		}
		h, err := hasher.FileHash(path, 0)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: hash: %v", a.Path, err))
		} else if h != a.Hash {
			errs = append(errs, fmt.Sprintf("%s: hash mismatch: manifest=%s, disk=%s", a.Path, a.Hash, h))
		}
		errs = append(errs, checkDimensions(a, path)...)
	}

	if m.Stats.TotalArtifacts != len(m.Artifacts) {
		errs = append(errs, fmt.Sprintf("stats.total_artifacts mismatch: %d != %d", m.Stats.TotalArtifacts, len(m.Artifacts)))
	}
	if m.Stats.TotalBytes != total {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d", m.Stats.TotalBytes, total))
	}

	return errs
}

func checkDimensions(a manifest.Artifact, path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", a.Path, err)}
	}
	defer f.Close()

	if a.Format == "ico" {
		sizes, err := encoder.ICOFrames(f)
		if err != nil {
			return []string{fmt.Sprintf("%s: %v", a.Path, err)}
		}
		if len(sizes) != len(a.Frames) {
			return []string{fmt.Sprintf("%s: %d frames, manifest lists %d", a.Path, len(sizes), len(a.Frames))}
		}
		var errs []string
		for i, s := range sizes {
			if s.X != a.Frames[i] || s.Y != a.Frames[i] {
				errs = append(errs, fmt.Sprintf("%s: frame %d is %dx%d, want %dx%d",
					a.Path, i, s.X, s.Y, a.Frames[i], a.Frames[i]))
			}
		}
		return errs
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return []string{fmt.Sprintf("%s: decode: %v", a.Path, err)}
	}
	var errs []string
	if format != a.Format {
		errs = append(errs, fmt.Sprintf("%s: format %s, manifest says %s", a.Path, format, a.Format))
	}
	if cfg.Width != a.Width || cfg.Height != a.Height {
		errs = append(errs, fmt.Sprintf("%s: dimensions %dx%d, manifest says %dx%d",
			a.Path, cfg.Width, cfg.Height, a.Width, a.Height))
	}
	return errs
}
