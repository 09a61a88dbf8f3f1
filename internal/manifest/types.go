package manifest

// FileName is the build record written next to the generated assets.
const FileName = "brand.manifest.json"

// Manifest is the top-level record of a brandgen build.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Profile     string     `json:"profile"`
	Fonts       []FontInfo `json:"fonts"`
	Artifacts   []Artifact `json:"artifacts"`
	Stats       Stats      `json:"stats"`
}

// FontInfo records how one font face was resolved.
type FontInfo struct {
	Role     string  `json:"role"` // "title", "subtitle", "description", "mark"
	Path     string  `json:"path"`
	Size     float64 `json:"size"`
	Fallback bool    `json:"fallback"` // bundled font used instead of Path
}

// Artifact is one file written by the build.
type Artifact struct {
	Path   string `json:"path"`   // slash-separated, relative to the output root
	Format string `json:"format"` // "jpeg", "png", "ico"
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // xxhash64, 16 hex chars
	Frames []int  `json:"frames,omitempty"` // square frame sizes of an icon container
}

// Stats aggregates build metrics.
type Stats struct {
	TotalArtifacts int   `json:"total_artifacts"`
	TotalBytes     int64 `json:"total_bytes"`
	FallbackFonts  int   `json:"fallback_fonts"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
