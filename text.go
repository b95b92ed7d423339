package mediacomp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// defaultFace is used by AddText and as the fallback when a requested
// system font cannot be found.
var defaultFace font.Face = inconsolata.Regular8x16

// fontDirs are the roots scanned for TrueType files. User-local
// directories come first so personal fonts win over system ones.
var fontDirs = func() []string {
	dirs := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local/share/fonts"))
	}
	return append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
}()

// TextStyle bundles a font face with the name, emphasis, and point size it
// was requested with. Build one with NewTextStyle.
type TextStyle struct {
	Name     string
	Emphasis string
	Size     float64

	face font.Face
}

// NewTextStyle locates a font whose file name contains name, parses it,
// and returns a style rendering at the given point size. A missing font is
// recoverable: the style falls back to the built-in face with a logged
// warning. Emphasis is recorded but not yet used in matching.
func NewTextStyle(name, emphasis string, size float64) (*TextStyle, error) {
	ts := &TextStyle{
		Name:     name,
		Emphasis: emphasis,
		Size:     size,
		face:     defaultFace,
	}
	path := findFontFile(name)
	if path == "" {
		log.Warn("font not found, using built-in face", "name", name)
		return ts, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	ts.face = truetype.NewFace(f, &truetype.Options{Size: size})
	return ts, nil
}

// Face returns the resolved font face.
func (ts *TextStyle) Face() font.Face { return ts.face }

// findFontFile walks the font directories and returns the first TrueType
// file whose base name contains query, or "" when nothing matches.
func findFontFile(query string) string {
	var match string
	for _, dir := range fontDirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || match != "" || info.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".ttc", ".otf":
			default:
				return nil
			}
			if strings.Contains(filepath.Base(path), query) {
				match = path
			}
			return nil
		})
		if match != "" {
			return match
		}
	}
	return ""
}

// AddText draws text with the built-in face, (x, y) being the top-left
// corner of the first glyph's cell.
func (p *Picture) AddText(x, y int, text string, c Color) {
	p.drawString(text, x, y, defaultFace, c)
}

// AddTextWithStyle draws text using the style's font face.
func (p *Picture) AddTextWithStyle(x, y int, text string, style *TextStyle, c Color) {
	p.drawString(text, x, y, style.face, c)
}

func (p *Picture) drawString(text string, x, y int, face font.Face, c Color) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  c,
		Face: face,
		// The drawer positions by baseline; shift down by the ascent so
		// the caller-supplied y is the top of the text.
		Dot: fixed.P(x, y).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	d.DrawString(text)
}
