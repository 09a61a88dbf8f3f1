package profile

import (
	"errors"
	"fmt"
	"path"
)

// ErrInvalidTarget is returned by Validate for targets the master
// canvases cannot produce.
var ErrInvalidTarget = errors.New("invalid target")

// Target is one output file derived from a master canvas.
type Target struct {
	Path   string // slash-separated, relative to the output root
	Width  int
	Height int
	Format string // "jpeg" or "png"
	Label  string // shown in the build report
}

// Favicon is the multi-frame icon container.
type Favicon struct {
	Path  string
	Sizes []int // one square frame per size
	Label string
}

// Profile is the complete set of files a build writes.
type Profile struct {
	Name    string
	Quality int // JPEG quality 1-100

	BannerWidth  int
	BannerHeight int
	IconSize     int

	Banner  []Target // downscaled from the banner master
	Icons   []Target // downscaled from the icon master
	Favicon Favicon
}

// IconSizes lists the square icon PNGs written under public/.
var IconSizes = []int{16, 32, 48, 96, 144, 192, 256, 512}

// Built-in profiles.
var profiles = map[string]Profile{
	DefaultName: unishare(),
}

func unishare() Profile {
	p := Profile{
		Name:         "unishare",
		Quality:      95,
		BannerWidth:  1200,
		BannerHeight: 630,
		IconSize:     512,
		Banner: []Target{
			{Path: "public/assets/hero-image.jpg", Width: 1200, Height: 630, Format: "jpeg", Label: "main banner"},
			{Path: "src/assets/hero-image.jpg", Width: 1200, Height: 630, Format: "jpeg", Label: "main banner"},
			{Path: "public/assets/og-image.jpg", Width: 1200, Height: 600, Format: "jpeg", Label: "Open Graph"},
			{Path: "public/assets/twitter-card.jpg", Width: 800, Height: 400, Format: "jpeg", Label: "Twitter"},
		},
		Favicon: Favicon{
			Path:  "public/favicon.ico",
			Sizes: []int{16, 32, 48},
			Label: "favicon",
		},
	}
	for _, s := range IconSizes {
		p.Icons = append(p.Icons, Target{
			Path:   fmt.Sprintf("public/icon-%dx%d.png", s, s),
			Width:  s,
			Height: s,
			Format: "png",
			Label:  "icon",
		})
	}
	p.Icons = append(p.Icons, Target{
		Path: "public/apple-touch-icon.png", Width: 180, Height: 180, Format: "png", Label: "Apple",
	})
	return p
}

// DefaultName is the profile the CLI builds.
const DefaultName = "unishare"

// Get returns the built-in profile with the given name.
func Get(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Default returns the profile the CLI builds.
func Default() Profile {
	return profiles[DefaultName]
}

// Paths lists every output path of the profile in build order.
func (p Profile) Paths() []string {
	var paths []string
	for _, t := range p.Banner {
		paths = append(paths, t.Path)
	}
	for _, t := range p.Icons {
		paths = append(paths, t.Path)
	}
	if p.Favicon.Path != "" {
		paths = append(paths, p.Favicon.Path)
	}
	return paths
}

// AssetDirs returns the directories created before anything is written,
// in first-seen order. Parents of the icon targets are expected to
// exist already or to be created along with these.
func (p Profile) AssetDirs() []string {
	seen := map[string]bool{}
	var dirs []string
	for _, t := range p.Banner {
		d := path.Dir(t.Path)
		if d == "." || seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}

// Validate checks that every target is a pure downscale of its master
// and that icon targets are square.
func (p Profile) Validate() error {
	for _, t := range p.Banner {
		if t.Width <= 0 || t.Height <= 0 || t.Width > p.BannerWidth || t.Height > p.BannerHeight {
			return fmt.Errorf("%w: %s is %dx%d, banner is %dx%d",
				ErrInvalidTarget, t.Path, t.Width, t.Height, p.BannerWidth, p.BannerHeight)
		}
	}
	for _, t := range p.Icons {
		if t.Width != t.Height {
			return fmt.Errorf("%w: icon %s is not square (%dx%d)", ErrInvalidTarget, t.Path, t.Width, t.Height)
		}
		if t.Width <= 0 || t.Width > p.IconSize {
			return fmt.Errorf("%w: icon %s is %dpx, master is %dpx", ErrInvalidTarget, t.Path, t.Width, p.IconSize)
		}
	}
	for _, s := range p.Favicon.Sizes {
		// ICO directory entries store sizes in one byte, 0 meaning 256.
		if s <= 0 || s > 256 || s > p.IconSize {
			return fmt.Errorf("%w: favicon frame %dpx", ErrInvalidTarget, s)
		}
	}
	return nil
}
