package dotmesh

import (
	"encoding/json"
	"fmt"
	"image"
)

// --- JSON structure types ---

type jsonSheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSheet struct {
	Frames map[string]jsonSheetRect `json:"frames"`
}

// Sheet is a set of named frames cut from one source image, described by a
// JSON manifest:
//
//	{"frames": {"idle": {"x":0, "y":0, "w":16, "h":16}, ...}}
type Sheet struct {
	frames map[string]*Frame
}

// LoadSheet parses a sprite-sheet manifest and builds a frame (mesh and
// tile grid) for every entry, cut from src. Entries that reach outside the
// source image are an error.
func LoadSheet(jsonData []byte, src *image.RGBA) (*Sheet, error) {
	var manifest jsonSheet
	if err := json.Unmarshal(jsonData, &manifest); err != nil {
		return nil, fmt.Errorf("dotmesh: failed to parse sheet JSON: %w", err)
	}
	if len(manifest.Frames) == 0 {
		return nil, fmt.Errorf("dotmesh: sheet JSON has no frames")
	}

	bounds := src.Bounds()
	sheet := &Sheet{frames: make(map[string]*Frame, len(manifest.Frames))}
	for name, r := range manifest.Frames {
		sub := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Add(bounds.Min)
		if !sub.In(bounds) {
			return nil, fmt.Errorf("dotmesh: sheet frame %q rect %+v outside source image %dx%d",
				name, r, bounds.Dx(), bounds.Dy())
		}
		sheet.frames[name] = NewFrame(src.SubImage(sub).(*image.RGBA), name)
	}
	return sheet, nil
}

// Frame returns the frame registered under name. ok is false for unknown
// names.
func (s *Sheet) Frame(name string) (*Frame, bool) {
	f, ok := s.frames[name]
	return f, ok
}

// Len returns the number of frames in the sheet.
func (s *Sheet) Len() int {
	return len(s.frames)
}

// Sprite builds a sprite carrying every frame of the sheet, with the given
// key as the initial pose. Returns an error when the sheet has no frame
// under that key.
func (s *Sheet) Sprite(name, initialPose string) (*Sprite, error) {
	if _, ok := s.frames[initialPose]; !ok {
		return nil, fmt.Errorf("dotmesh: sheet has no frame %q", initialPose)
	}
	sp := NewSprite(name)
	for key, f := range s.frames {
		sp.AddFrame(key, f)
	}
	sp.SetPose(initialPose)
	return sp, nil
}
