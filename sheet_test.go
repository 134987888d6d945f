package dotmesh

import (
	"strings"
	"testing"
)

const sheetManifest = `{
	"frames": {
		"idle":   {"x": 0,  "y": 0, "w": 16, "h": 16},
		"crouch": {"x": 16, "y": 0, "w": 16, "h": 16}
	}
}`

func testSheet(t *testing.T) *Sheet {
	t.Helper()
	src := newPackedImage(32, 16)
	fillPacked(src, DotRect{2, 2, 11, 14}, packedSolid)  // idle
	fillPacked(src, DotRect{23, 8, 1, 1}, packedSolid)   // crouch, local (7,8)
	sheet, err := LoadSheet([]byte(sheetManifest), src)
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	return sheet
}

func TestLoadSheet(t *testing.T) {
	sheet := testSheet(t)
	if sheet.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sheet.Len())
	}

	idle, ok := sheet.Frame("idle")
	if !ok {
		t.Fatal("no idle frame")
	}
	box, _ := idle.BBox()
	if want := (DotRect{2, 2, 11, 14}); box != want {
		t.Errorf("idle BBox = %v, want %v", box, want)
	}

	crouch, ok := sheet.Frame("crouch")
	if !ok {
		t.Fatal("no crouch frame")
	}
	box, _ = crouch.BBox()
	if want := (DotRect{7, 8, 1, 1}); box != want {
		t.Errorf("crouch BBox = %v, want %v", box, want)
	}

	if _, ok := sheet.Frame("fly"); ok {
		t.Error("Frame returned an unregistered name")
	}
}

func TestLoadSheetInvalidJSON(t *testing.T) {
	_, err := LoadSheet([]byte(`{"frames": `), newPackedImage(16, 16))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "parse sheet JSON") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadSheetNoFrames(t *testing.T) {
	_, err := LoadSheet([]byte(`{"frames": {}}`), newPackedImage(16, 16))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "no frames") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadSheetOutOfBounds(t *testing.T) {
	manifest := `{"frames": {"big": {"x": 8, "y": 0, "w": 16, "h": 16}}}`
	_, err := LoadSheet([]byte(manifest), newPackedImage(16, 16))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "outside source image") {
		t.Errorf("err = %v", err)
	}
}

func TestSheetSprite(t *testing.T) {
	sheet := testSheet(t)
	s, err := sheet.Sprite("hero", "crouch")
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}
	if s.Pose() != "crouch" {
		t.Errorf("Pose = %q, want crouch", s.Pose())
	}
	if !s.SetPose("idle") {
		t.Error("sheet sprite is missing the idle pose")
	}

	if _, err := sheet.Sprite("hero", "fly"); err == nil {
		t.Error("Sprite accepted an unknown initial pose")
	}
}

func TestSheetFramesCollide(t *testing.T) {
	// Frames cut from a shared source behave exactly like frames built from
	// standalone images.
	sheet := testSheet(t)
	idle, _ := sheet.Frame("idle")
	crouch, _ := sheet.Frame("crouch")

	got, hit := idle.Collide(crouch, DotPoint{16, 16}, DotPoint{12, 11})
	if !hit {
		t.Fatal("expected a hit")
	}
	if want := (DotRect{19, 19, 1, 1}); got != want {
		t.Errorf("region = %v, want %v", got, want)
	}
}
