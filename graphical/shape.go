package graphical

// Positioner is the positioning capability of a graphical object. Layout
// owns the values; this package only carries them.
type Positioner interface {
	PositionAndShape() *BoundingBox
}

// BoundingBox places an object relative to its parent.
type BoundingBox struct {
	RelativeX, RelativeY float64
	Width, Height        float64
	Parent               *BoundingBox
}

func (b *BoundingBox) SetRelativePosition(x, y float64) {
	b.RelativeX = x
	b.RelativeY = y
}

// AbsolutePosition sums the relative positions up the parent chain.
func (b *BoundingBox) AbsolutePosition() (float64, float64) {
	x, y := b.RelativeX, b.RelativeY
	for p := b.Parent; p != nil; p = p.Parent {
		x += p.RelativeX
		y += p.RelativeY
	}
	return x, y
}

// VoiceEntry holds the graphical notes of one voice that start together.
type VoiceEntry struct {
	box   BoundingBox
	Notes []*GraphicalNote
}

func NewVoiceEntry(parent *BoundingBox) *VoiceEntry {
	return &VoiceEntry{box: BoundingBox{Parent: parent}}
}

func (v *VoiceEntry) PositionAndShape() *BoundingBox {
	return &v.box
}
