package profile

import (
	"errors"
	"fmt"
	"testing"
)

func TestGet_Unishare(t *testing.T) {
	p, ok := Get("unishare")
	if !ok {
		t.Fatal("unishare profile not registered")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Quality != 95 {
		t.Errorf("quality: got %d, want 95", p.Quality)
	}

	want := map[string][2]int{
		"public/assets/hero-image.jpg":   {1200, 630},
		"src/assets/hero-image.jpg":      {1200, 630},
		"public/assets/og-image.jpg":     {1200, 600},
		"public/assets/twitter-card.jpg": {800, 400},
	}
	if len(p.Banner) != len(want) {
		t.Fatalf("banner targets: got %d, want %d", len(p.Banner), len(want))
	}
	for _, tg := range p.Banner {
		dim, ok := want[tg.Path]
		if !ok {
			t.Errorf("unexpected banner target %s", tg.Path)
			continue
		}
		if tg.Width != dim[0] || tg.Height != dim[1] || tg.Format != "jpeg" {
			t.Errorf("%s: got %dx%d %s", tg.Path, tg.Width, tg.Height, tg.Format)
		}
	}
}

func TestGet_IconTargets(t *testing.T) {
	p := Default()
	if len(p.Icons) != len(IconSizes)+1 {
		t.Fatalf("icon targets: got %d, want %d", len(p.Icons), len(IconSizes)+1)
	}
	for i, s := range IconSizes {
		tg := p.Icons[i]
		if tg.Path != fmt.Sprintf("public/icon-%dx%d.png", s, s) {
			t.Errorf("icon %d path: got %s", i, tg.Path)
		}
		if tg.Width != s || tg.Height != s || tg.Format != "png" {
			t.Errorf("%s: got %dx%d %s", tg.Path, tg.Width, tg.Height, tg.Format)
		}
	}
	apple := p.Icons[len(p.Icons)-1]
	if apple.Path != "public/apple-touch-icon.png" || apple.Width != 180 || apple.Height != 180 {
		t.Errorf("apple icon: got %+v", apple)
	}

	if p.Favicon.Path != "public/favicon.ico" {
		t.Errorf("favicon path: got %s", p.Favicon.Path)
	}
	if fmt.Sprint(p.Favicon.Sizes) != "[16 32 48]" {
		t.Errorf("favicon sizes: got %v", p.Favicon.Sizes)
	}
}

func TestGet_Unknown(t *testing.T) {
	if p, ok := Get("does-not-exist"); ok || p.Name != "" {
		t.Errorf("unknown profile: got %q, ok=%v", p.Name, ok)
	}
	if Default().Name != DefaultName {
		t.Errorf("default name: got %q", Default().Name)
	}
}

func TestPaths(t *testing.T) {
	paths := Default().Paths()
	if len(paths) != 14 {
		t.Fatalf("paths: got %d, want 14", len(paths))
	}
	if paths[0] != "public/assets/hero-image.jpg" || paths[len(paths)-1] != "public/favicon.ico" {
		t.Errorf("paths order: first %s, last %s", paths[0], paths[len(paths)-1])
	}
}

func TestAssetDirs(t *testing.T) {
	dirs := Default().AssetDirs()
	if fmt.Sprint(dirs) != "[public/assets src/assets]" {
		t.Errorf("asset dirs: got %v", dirs)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{"banner upscale", func(p *Profile) { p.Banner[0].Width = 2400 }},
		{"banner zero height", func(p *Profile) { p.Banner[2].Height = 0 }},
		{"icon not square", func(p *Profile) { p.Icons[1].Height = 31 }},
		{"icon upscale", func(p *Profile) { p.Icons[0].Width, p.Icons[0].Height = 1024, 1024 }},
		{"favicon too large", func(p *Profile) { p.Favicon.Sizes = []int{16, 300} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := unishare()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("got %v, want ErrInvalidTarget", err)
			}
		})
	}
}
