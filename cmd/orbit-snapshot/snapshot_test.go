package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/skillsplanet/internal/orbit"
	"gopkg.in/yaml.v3"
)

func testRequest() Request {
	return Request{
		ConfigPath:  filepath.Join("..", "..", "data", "field.yaml"),
		WordsPath:   filepath.Join("..", "..", "data", "words.yaml"),
		Language:    "en",
		Frames:      10,
		Width:       200,
		Height:      150,
		Supersample: 1,
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{"1024X768", 1024, 768, false},
		{"800", 0, 0, true},
		{"0x600", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr || w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d, %d, %v", tt.in, w, h, err)
		}
	}
}

func TestParsePoint(t *testing.T) {
	if x, y, err := parsePoint("12.5, 40"); err != nil || x != 12.5 || y != 40 {
		t.Errorf("parsePoint = %v, %v, %v", x, y, err)
	}
	if _, _, err := parsePoint("12"); err == nil {
		t.Error("parsePoint without comma should fail")
	}
}

func TestTake(t *testing.T) {
	snap, err := Take(testRequest())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if b := snap.Image.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("image size = %v", b)
	}
	if snap.Frames != 10 {
		t.Errorf("Frames = %d, want 10", snap.Frames)
	}
	if len(snap.Labels) != 37 || len(snap.Frame) != 37 {
		t.Errorf("labels = %d frame = %d, want 37", len(snap.Labels), len(snap.Frame))
	}
	if snap.State.Mode != orbit.ModeIdle {
		t.Errorf("Mode = %v, want idle without pointer", snap.State.Mode)
	}
	// 150 像素的短边 → 半径钳制到下限
	if snap.Radius != 90 {
		t.Errorf("Radius = %v, want 90", snap.Radius)
	}
}

func TestTake_Hover(t *testing.T) {
	req := testRequest()
	req.Hover = &[2]float64{190, 75}
	snap, err := Take(req)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if snap.State.Mode != orbit.ModeHovering {
		t.Errorf("Mode = %v, want hovering", snap.State.Mode)
	}
	if snap.State.TargetYaw <= 0 {
		t.Errorf("TargetYaw = %v, want positive for a pointer right of centre", snap.State.TargetYaw)
	}
}

func TestWriteImageAndDump(t *testing.T) {
	snap, err := Take(testRequest())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out", "snap.png")
	if err := writeImage(pngPath, snap.Image); err != nil {
		t.Fatalf("writeImage png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("written PNG does not decode: %v", err)
	}

	webpPath := filepath.Join(dir, "snap.webp")
	if err := writeImage(webpPath, snap.Image); err != nil {
		t.Fatalf("writeImage webp: %v", err)
	}
	if info, err := os.Stat(webpPath); err != nil || info.Size() == 0 {
		t.Errorf("webp not written: %v", err)
	}

	if err := writeImage(filepath.Join(dir, "snap.gif"), snap.Image); err == nil {
		t.Error("unsupported extension should fail")
	}

	dumpPath := filepath.Join(dir, "frame.yaml")
	if err := writeDump(dumpPath, snap); err != nil {
		t.Fatalf("writeDump: %v", err)
	}
	data, err := os.ReadFile(dumpPath)
	if err != nil {
		t.Fatal(err)
	}
	var d frameDump
	if err := yaml.Unmarshal(data, &d); err != nil {
		t.Fatalf("dump is not valid YAML: %v", err)
	}
	if d.Language != "en" || d.Mode != "idle" || len(d.Labels) != 37 {
		t.Errorf("dump = lang %q mode %q labels %d", d.Language, d.Mode, len(d.Labels))
	}
	if d.Labels[20].Text != "Team spirit" {
		t.Errorf("label 20 = %q, want Team spirit", d.Labels[20].Text)
	}
}
