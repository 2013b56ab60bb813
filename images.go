package bistro

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

const (
	portraitSize = 150
	jpegQuality  = 80
)

// Portrait is one imported team or testimonial photo.
type Portrait struct {
	Source   string // original file path
	Filename string // written file name, slugified with a .jpg extension
	Width    int
	Height   int
	Size     int
}

// processPortrait decodes an image, centre-crops it to a square, scales it
// to portraitSize and encodes it as JPEG.
func processPortrait(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, portraitSize, portraitSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// slugifyFilename turns a photo's file name into the portrait's base name:
// accents folded, lowercase ASCII words joined by hyphens.
func slugifyFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(strings.ToLower(base)) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}

var portraitExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// ImportPortraits converts every JPEG, PNG or GIF in srcDir into a square
// portrait in dstDir. Files that fail to decode are reported together after
// the rest have been written.
func ImportPortraits(srcDir, dstDir string) ([]Portrait, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("bistro: read portraits: %w", err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("bistro: create %s: %w", dstDir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && portraitExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []Portrait
	var failed []string
	used := map[string]bool{}
	for _, name := range names {
		path := filepath.Join(srcDir, name)
		p, err := importPortrait(path, dstDir, used)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		out = append(out, p)
	}
	if len(failed) > 0 {
		return out, fmt.Errorf("bistro: %d portrait(s) failed: %s", len(failed), strings.Join(failed, "; "))
	}
	return out, nil
}

func importPortrait(path, dstDir string, used map[string]bool) (Portrait, error) {
	f, err := os.Open(path)
	if err != nil {
		return Portrait{}, err
	}
	defer f.Close()

	data, err := processPortrait(f)
	if err != nil {
		return Portrait{}, err
	}

	base := slugifyFilename(path)
	if base == "" {
		base = "portrait"
	}
	filename := base + ".jpg"
	for i := 2; used[filename]; i++ {
		filename = fmt.Sprintf("%s-%d.jpg", base, i)
	}
	used[filename] = true

	if err := os.WriteFile(filepath.Join(dstDir, filename), data, 0o644); err != nil {
		return Portrait{}, fmt.Errorf("write image: %w", err)
	}
	return Portrait{
		Source:   path,
		Filename: filename,
		Width:    portraitSize,
		Height:   portraitSize,
		Size:     len(data),
	}, nil
}
