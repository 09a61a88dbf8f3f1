package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/brandgen/internal/manifest"
	"github.com/AnyUserName/brandgen/internal/pipeline"
	"github.com/AnyUserName/brandgen/internal/render"
)

var missingFonts = render.Fonts{
	Title:       render.FontSpec{Path: "/nonexistent/bold.ttf", Size: 80, Bold: true},
	Subtitle:    render.FontSpec{Path: "/nonexistent/regular.ttf", Size: 40},
	Description: render.FontSpec{Path: "/nonexistent/regular.ttf", Size: 32},
	Mark:        render.FontSpec{Path: "/nonexistent/bold.ttf", Size: 300, Bold: true},
}

func buildTree(t *testing.T) (string, *manifest.Manifest) {
	t.Helper()
	root := t.TempDir()
	m, err := pipeline.New(pipeline.Config{RootDir: root, Fonts: missingFonts}).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := manifest.WriteJSON(m, filepath.Join(root, manifest.FileName)); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return root, m
}

func TestValidateManifest_Clean(t *testing.T) {
	root, m := buildTree(t)
	if errs := validateManifest(m, root); len(errs) != 0 {
		t.Errorf("fresh build has errors: %v", errs)
	}
}

func TestValidateManifest_DetectsTampering(t *testing.T) {
	root, m := buildTree(t)

	// Swap the Twitter card for the 16px icon: size, hash, format and
	// dimensions all stop matching.
	icon, err := os.ReadFile(filepath.Join(root, "public", "icon-16x16.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "public", "assets", "twitter-card.jpg"), icon, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(root, "src", "assets", "hero-image.jpg")); err != nil {
		t.Fatal(err)
	}

	joined := strings.Join(validateManifest(m, root), "\n")
	for _, want := range []string{
		"public/assets/twitter-card.jpg: size mismatch",
		"public/assets/twitter-card.jpg: hash mismatch",
		"public/assets/twitter-card.jpg: format png",
		"public/assets/twitter-card.jpg: dimensions 16x16",
		"src/assets/hero-image.jpg: file not found",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing error %q in:\n%s", want, joined)
		}
	}
}

func TestValidateManifest_FaviconFrames(t *testing.T) {
	root, m := buildTree(t)
	for i := range m.Artifacts {
		if m.Artifacts[i].Format == "ico" {
			m.Artifacts[i].Frames = []int{16, 32}
		}
	}
	joined := strings.Join(validateManifest(m, root), "\n")
	if !strings.Contains(joined, "public/favicon.ico: 3 frames, manifest lists 2") {
		t.Errorf("frame mismatch not reported:\n%s", joined)
	}
}

func TestValidateManifest_CorruptFavicon(t *testing.T) {
	root, m := buildTree(t)
	path := filepath.Join(root, "public", "favicon.ico")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Keep the directory, cut into the last frame's payload.
	if err := os.WriteFile(path, data[:len(data)-16], 0o644); err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(validateManifest(m, root), "\n")
	for _, want := range []string{"public/favicon.ico: size mismatch", "public/favicon.ico: ico:"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing error %q in:\n%s", want, joined)
		}
	}
}

func TestValidateManifest_ProfileCoverage(t *testing.T) {
	root, m := buildTree(t)
	var kept []manifest.Artifact
	for _, a := range m.Artifacts {
		if a.Path != "public/favicon.ico" {
			kept = append(kept, a)
		}
	}
	m.Artifacts = kept
	m.ComputeStats()

	errs := validateManifest(m, root)
	if len(errs) != 1 || errs[0] != "public/favicon.ico: not recorded in manifest" {
		t.Errorf("got %v", errs)
	}

	m.Profile = "other"
	joined := strings.Join(validateManifest(m, root), "\n")
	if !strings.Contains(joined, `unknown profile "other"`) {
		t.Errorf("unknown profile not reported:\n%s", joined)
	}
}

func TestValidateManifest_Stats(t *testing.T) {
	root, m := buildTree(t)
	m.Version = 2
	m.Stats.TotalArtifacts++
	joined := strings.Join(validateManifest(m, root), "\n")
	for _, want := range []string{"unsupported manifest version: 2", "stats.total_artifacts mismatch"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing error %q in:\n%s", want, joined)
		}
	}
}

func TestPrintStats(t *testing.T) {
	_, m := buildTree(t)
	var buf bytes.Buffer
	printStats(&buf, m)
	out := buf.String()
	for _, want := range []string{"Profile:          unishare", "jpeg", "png", "ico", "3 frames", "fallback"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q", want)
		}
	}
}

func TestPrintReport(t *testing.T) {
	_, m := buildTree(t)
	var buf bytes.Buffer
	printReport(&buf, m, 0)
	out := buf.String()
	for _, want := range []string{
		"All images created successfully!",
		"- /public/assets/og-image.jpg (Open Graph)",
		"- /public/favicon.ico (favicon)",
		"- /public/apple-touch-icon.png (Apple)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
