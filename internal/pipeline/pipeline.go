package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/AnyUserName/brandgen/internal/encoder"
	"github.com/AnyUserName/brandgen/internal/hasher"
	"github.com/AnyUserName/brandgen/internal/manifest"
	"github.com/AnyUserName/brandgen/internal/profile"
	"github.com/AnyUserName/brandgen/internal/render"
)

// Config holds all parameters for a build run.
type Config struct {
	RootDir string          // output root; targets are relative to it
	Profile profile.Profile // zero value selects "unishare"
	Fonts   render.Fonts    // zero value selects render.DefaultFonts
	Verbose bool
	Out     io.Writer // progress lines; nil discards them
	Log     io.Writer // [brandgen] diagnostics when Verbose; nil discards them
}

// ErrExtension is returned when a target path does not carry the file
// extension of its encoder.
var ErrExtension = errors.New("extension does not match format")

// Pipeline renders the master canvases and writes every target of the
// profile, one file at a time.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Profile.Name == "" {
		cfg.Profile = profile.Default()
	}
	if cfg.Fonts == (render.Fonts{}) {
		cfg.Fonts = render.DefaultFonts
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full build and returns the manifest. The first
// failing mkdir, encode or write aborts the run; files written before
// it stay on disk.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	prof := p.cfg.Profile
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", prof.Name, err)
	}
	p.logf("%s", p.registry.String())

	for _, dir := range prof.AssetDirs() {
		if err := os.MkdirAll(p.abs(dir), 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	m := manifest.New(prof.Name)

	fmt.Fprintln(p.cfg.Out, "Creating banner image...")
	banner, faces := render.Banner(p.cfg.Fonts)
	for i, role := range []string{"title", "subtitle", "description"} {
		m.Fonts = append(m.Fonts, fontInfo(role, faces[i]))
		p.logFace(role, faces[i])
	}
	if err := checkMaster("banner", banner, prof.BannerWidth, prof.BannerHeight); err != nil {
		return nil, err
	}
	for _, t := range prof.Banner {
		if err := p.writeTarget(m, banner, t); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(p.cfg.Out, "Creating icon...")
	icon, mark := render.Icon(p.cfg.Fonts.Mark)
	m.Fonts = append(m.Fonts, fontInfo("mark", mark))
	p.logFace("mark", mark)
	if err := checkMaster("icon", icon, prof.IconSize, prof.IconSize); err != nil {
		return nil, err
	}
	for _, t := range prof.Icons {
		if err := p.writeTarget(m, icon, t); err != nil {
			return nil, err
		}
	}
	if err := p.writeFavicon(m, icon, prof.Favicon); err != nil {
		return nil, err
	}

	m.ComputeStats()
	return m, nil
}

func (p *Pipeline) writeTarget(m *manifest.Manifest, master image.Image, t profile.Target) error {
	enc := p.registry.Get(t.Format)
	if enc == nil {
		return fmt.Errorf("%s: no encoder for %q", t.Path, t.Format)
	}
	if err := checkExtension(t.Path, enc); err != nil {
		return err
	}

	img, err := Resize(master, t.Width, t.Height)
	if err != nil {
		return fmt.Errorf("resize %s: %w", t.Path, err)
	}

	data, err := enc.Encode(img, p.cfg.Profile.Quality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.Path, err)
	}

	art, err := p.write(t.Path, data)
	if err != nil {
		return err
	}
	art.Format = enc.Format()
	art.Label = t.Label
	art.Width, art.Height = t.Width, t.Height
	m.Add(art)
	return nil
}

func (p *Pipeline) writeFavicon(m *manifest.Manifest, master image.Image, fav profile.Favicon) error {
	if fav.Path == "" || len(fav.Sizes) == 0 {
		return nil
	}
	enc := p.registry.Frames("ico")
	if enc == nil {
		return fmt.Errorf("%s: no icon container encoder", fav.Path)
	}
	if err := checkExtension(fav.Path, enc); err != nil {
		return err
	}

	frames := make([]image.Image, 0, len(fav.Sizes))
	largest := 0
	for _, s := range fav.Sizes {
		img, err := Resize(master, s, s)
		if err != nil {
			return fmt.Errorf("resize %s@%d: %w", fav.Path, s, err)
		}
		frames = append(frames, img)
		if s > largest {
			largest = s
		}
	}

	data, err := enc.EncodeFrames(frames)
	if err != nil {
		return fmt.Errorf("encode %s: %w", fav.Path, err)
	}

	art, err := p.write(fav.Path, data)
	if err != nil {
		return err
	}
	art.Format = enc.Format()
	art.Label = fav.Label
	art.Width, art.Height = largest, largest
	art.Frames = append([]int(nil), fav.Sizes...)
	m.Add(art)
	return nil
}

// write stores data at rel under the output root. The parent directory
// must already exist.
func (p *Pipeline) write(rel string, data []byte) (manifest.Artifact, error) {
	if err := os.WriteFile(p.abs(rel), data, 0o644); err != nil {
		return manifest.Artifact{}, fmt.Errorf("write %s: %w", rel, err)
	}
	p.logf("wrote %s (%d bytes)", rel, len(data))
	return manifest.Artifact{
		Path: rel,
		Size: int64(len(data)),
		Hash: hasher.ContentHash(data, 0),
	}, nil
}

func (p *Pipeline) abs(rel string) string {
	return filepath.Join(p.cfg.RootDir, filepath.FromSlash(rel))
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(p.cfg.Log, "[brandgen] "+format+"\n", args...)
	}
}

func (p *Pipeline) logFace(role string, f render.Face) {
	if f.Fallback {
		p.logf("font %s: %s unavailable, using bundled font at %.0fpt", role, f.Spec.Path, f.Spec.Size)
		return
	}
	p.logf("font %s: %s at %.0fpt", role, f.Spec.Path, f.Spec.Size)
}

func fontInfo(role string, f render.Face) manifest.FontInfo {
	return manifest.FontInfo{
		Role:     role,
		Path:     f.Spec.Path,
		Size:     f.Spec.Size,
		Fallback: f.Fallback,
	}
}

func checkMaster(name string, img image.Image, w, h int) error {
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("%s master is %dx%d, profile expects %dx%d", name, b.Dx(), b.Dy(), w, h)
	}
	return nil
}

func checkExtension(rel string, enc encoder.Encoder) error {
	if ext := path.Ext(rel); ext != "."+enc.Extension() {
		return fmt.Errorf("%w: %s written as %s needs .%s", ErrExtension, rel, enc.Format(), enc.Extension())
	}
	return nil
}
