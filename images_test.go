package bistro

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessPortraitCropsToSquare(t *testing.T) {
	src := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, src, 300, 120)
	f, err := os.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	data, err := processPortrait(f)
	if err != nil {
		t.Fatalf("processPortrait: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != portraitSize || b.Dy() != portraitSize {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), portraitSize, portraitSize)
	}
}

func TestProcessPortraitRejectsGarbage(t *testing.T) {
	if _, err := processPortrait(strings.NewReader("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestImportPortraits(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "portraits")
	writePNG(t, filepath.Join(src, "Sarah Chen.png"), 200, 260)
	writePNG(t, filepath.Join(src, "marcus.PNG"), 64, 64)
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportPortraits(src, dst)
	if err != nil {
		t.Fatalf("ImportPortraits: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("imported %d portraits, want 2", len(got))
	}
	if got[0].Filename != "sarah-chen.jpg" || got[1].Filename != "marcus.jpg" {
		t.Errorf("filenames = %q, %q", got[0].Filename, got[1].Filename)
	}
	for _, p := range got {
		if _, err := os.Stat(filepath.Join(dst, p.Filename)); err != nil {
			t.Errorf("%s not written: %v", p.Filename, err)
		}
	}
}

func TestImportPortraitsReportsFailures(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writePNG(t, filepath.Join(src, "good.png"), 50, 50)
	if err := os.WriteFile(filepath.Join(src, "broken.jpg"), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportPortraits(src, dst)
	if err == nil || !strings.Contains(err.Error(), "broken.jpg") {
		t.Fatalf("err = %v, want failure naming broken.jpg", err)
	}
	if len(got) != 1 || got[0].Filename != "good.jpg" {
		t.Errorf("got = %+v, want good.jpg imported", got)
	}
}

func TestSlugifyFilename(t *testing.T) {
	tests := map[string]string{
		"Sarah Chen.png":       "sarah-chen",
		"/tmp/Chef_Marco.JPEG": "chef-marco",
		"  spaced  .gif":       "spaced",
		"José Núñez.jpg":       "jose-nunez",
		"Café & Bar!.png":      "cafe-bar",
	}
	for in, want := range tests {
		if got := slugifyFilename(in); got != want {
			t.Errorf("slugifyFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
