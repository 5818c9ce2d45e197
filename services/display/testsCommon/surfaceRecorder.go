package testsCommon

// Line is a recorded DrawLine call
type Line struct {
	X0, Y0, X1, Y1 int
}

// Rect is a recorded DrawRect or ClearRect call
type Rect struct {
	X0, Y0, X1, Y1 int
	Filled         bool
}

// Text is a recorded DrawText call
type Text struct {
	X, Y  int
	Value string
}

// SurfaceRecorder is a surface that records the drawing calls. MeasureText reports fixed size glyphs.
type SurfaceRecorder struct {
	WidthValue  int
	HeightValue int
	GlyphWidth  int
	GlyphHeight int

	Clears []Rect
	Rects  []Rect
	Lines  []Line
	Texts  []Text
}

// NewSurfaceRecorder -
func NewSurfaceRecorder(width int, height int) *SurfaceRecorder {
	return &SurfaceRecorder{
		WidthValue:  width,
		HeightValue: height,
		GlyphWidth:  7,
		GlyphHeight: 13,
	}
}

// ClearRect -
func (recorder *SurfaceRecorder) ClearRect(x0, y0, x1, y1 int) {
	recorder.Clears = append(recorder.Clears, Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// DrawText -
func (recorder *SurfaceRecorder) DrawText(x, y int, text string) {
	recorder.Texts = append(recorder.Texts, Text{X: x, Y: y, Value: text})
}

// DrawLine -
func (recorder *SurfaceRecorder) DrawLine(x0, y0, x1, y1 int) {
	recorder.Lines = append(recorder.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// DrawRect -
func (recorder *SurfaceRecorder) DrawRect(x0, y0, x1, y1 int, filled bool) {
	recorder.Rects = append(recorder.Rects, Rect{X0: x0, Y0: y0, X1: x1, Y1: y1, Filled: filled})
}

// MeasureText -
func (recorder *SurfaceRecorder) MeasureText(text string) (int, int) {
	return len(text) * recorder.GlyphWidth, recorder.GlyphHeight
}

// Width -
func (recorder *SurfaceRecorder) Width() int {
	return recorder.WidthValue
}

// Height -
func (recorder *SurfaceRecorder) Height() int {
	return recorder.HeightValue
}

// Reset forgets the recorded calls
func (recorder *SurfaceRecorder) Reset() {
	recorder.Clears = nil
	recorder.Rects = nil
	recorder.Lines = nil
	recorder.Texts = nil
}

// IsInterfaceNil -
func (recorder *SurfaceRecorder) IsInterfaceNil() bool {
	return recorder == nil
}
