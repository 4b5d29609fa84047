package termpix

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/wbrown/termpix/imageutil"
)

// splitRows splits a segment sequence into rows at "\n" segments.
func splitRows(segments []Segment) [][]Segment {
	var rows [][]Segment
	var row []Segment
	for _, seg := range segments {
		if seg.Text == "\n" {
			rows = append(rows, row)
			row = nil
			continue
		}
		row = append(row, seg)
	}
	return rows
}

func TestRenderFullcellSolid(t *testing.T) {
	t.Parallel()

	c := imageutil.RGB{R: 10, G: 20, B: 30}
	img := imageutil.CreateSolidImage(4, 3, c)
	r := NewRenderer(WithGeometry(Fullcell))

	segments, err := r.Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := splitRows(segments)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	want := OnColor(RGB(10, 20, 30))
	for y, row := range rows {
		if len(row) != 4 {
			t.Fatalf("Expected 4 cells in row %d, got %d", y, len(row))
		}
		for x, seg := range row {
			if seg.Text != "  " {
				t.Errorf("Expected two spaces at (%d,%d), got %q", x, y, seg.Text)
			}
			if !seg.Style.Equals(want) {
				t.Errorf("Expected style %q at (%d,%d), got %q", want, x, y, seg.Style)
			}
		}
	}
}

func TestRenderFullcellTransparent(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateTransparentImage(2, 2)

	r := NewRenderer(WithGeometry(Fullcell))
	segments, err := r.Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i, seg := range segments {
		if !seg.Style.IsDefault() {
			t.Errorf("Expected default style at segment %d, got %q", i, seg.Style)
		}
	}

	// With a substitute color every cell and every line break carries it.
	dc := RGB(0, 0, 64)
	r = NewRenderer(WithGeometry(Fullcell), WithDefaultColor(dc))
	segments, err = r.Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := OnColor(dc)
	for i, seg := range segments {
		if !seg.Style.Equals(want) {
			t.Errorf("Expected style %q at segment %d, got %q", want, i, seg.Style)
		}
	}
}

func TestRenderHalfcellPairs(t *testing.T) {
	t.Parallel()

	rowColors := []imageutil.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
	}
	img := imageutil.NewRGBAImage(2, 4)
	for y, c := range rowColors {
		for x := 0; x < 2; x++ {
			img.SetRGB(x, y, c)
		}
	}

	segments, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := splitRows(segments)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows for 4 pixel rows, got %d", len(rows))
	}

	for y, row := range rows {
		upper := rowColors[2*y]
		lower := rowColors[2*y+1]
		for x, seg := range row {
			if seg.Text != upperHalfBlock {
				t.Errorf("Expected half block at (%d,%d), got %q", x, y, seg.Text)
			}
			if !seg.Style.Foreground.Equals(RGB(upper.R, upper.G, upper.B)) {
				t.Errorf("Expected foreground %v at (%d,%d), got %q", upper, x, y, seg.Style.Foreground)
			}
			if !seg.Style.Background.Equals(RGB(lower.R, lower.G, lower.B)) {
				t.Errorf("Expected background %v at (%d,%d), got %q", lower, x, y, seg.Style.Background)
			}
		}
	}
}

func TestRenderHalfcellTransparency(t *testing.T) {
	t.Parallel()

	// Upper pixel opaque red, lower pixel fully transparent.
	img := imageutil.NewRGBAImage(1, 2)
	img.SetRGB(0, 0, imageutil.RGB{R: 255, G: 0, B: 0})

	segments, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	rows := splitRows(segments)
	if len(rows) != 1 || len(rows[0]) != 1 {
		t.Fatalf("Expected a single cell, got %v", rows)
	}
	cell := rows[0][0]
	if !cell.Style.Foreground.Equals(ColorRed) {
		t.Errorf("Expected red foreground, got %q", cell.Style.Foreground)
	}
	if !cell.Style.Background.IsDefault() {
		t.Errorf("Expected default background, got %q", cell.Style.Background)
	}

	// A configured substitute replaces the transparent side.
	navy := RGB(0, 0, 128)
	segments, err = NewRenderer(WithDefaultColor(navy)).Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	cell = splitRows(segments)[0][0]
	if !cell.Style.Background.Equals(navy) {
		t.Errorf("Expected navy background, got %q", cell.Style.Background)
	}

	// Both pixels transparent: the substitute fills both sides.
	blank := imageutil.CreateTransparentImage(1, 2)
	segments, err = NewRenderer(WithDefaultColor(navy)).Render(blank, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	cell = splitRows(segments)[0][0]
	if !cell.Style.Foreground.Equals(navy) || !cell.Style.Background.Equals(navy) {
		t.Errorf("Expected navy on navy, got %q", cell.Style)
	}

	// Without a substitute the cell inherits the terminal's colors.
	segments, err = NewRenderer().Render(blank, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	cell = splitRows(segments)[0][0]
	if !cell.Style.IsDefault() {
		t.Errorf("Expected default style, got %q", cell.Style)
	}
}

func TestRenderSemiTransparentKeepsColor(t *testing.T) {
	t.Parallel()

	// Any nonzero alpha keeps the pixel's own channels.
	img := imageutil.NewRGBAImage(1, 2)
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 1})
	img.SetNRGBA(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 254})

	segments, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	cell := splitRows(segments)[0][0]
	if !cell.Style.Foreground.Equals(RGB(200, 100, 50)) {
		t.Errorf("Expected foreground rgb(200,100,50), got %q", cell.Style.Foreground)
	}
	if !cell.Style.Background.Equals(RGB(10, 20, 30)) {
		t.Errorf("Expected background rgb(10,20,30), got %q", cell.Style.Background)
	}
}

func TestRenderOddHeightPadded(t *testing.T) {
	t.Parallel()

	// 5 pixel rows round up to 3 cell rows; the synthesized sixth row
	// is transparent, so the last cell row has no background color.
	img := imageutil.NewRGBAImage(2, 5)
	for y := 0; y < 5; y++ {
		v := uint8(10 + 50*y)
		for x := 0; x < 2; x++ {
			img.SetRGB(x, y, imageutil.RGB{R: v, G: v, B: v})
		}
	}

	segments, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	rows := splitRows(segments)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows for 5 pixel rows, got %d", len(rows))
	}

	for x, seg := range rows[2] {
		if !seg.Style.Foreground.Equals(RGB(210, 210, 210)) {
			t.Errorf("Expected last source row as foreground at %d, got %q", x, seg.Style.Foreground)
		}
		if !seg.Style.Background.IsDefault() {
			t.Errorf("Expected default background at %d, got %q", x, seg.Style.Background)
		}
	}
}

func TestRenderOddResizeTargetRoundsUp(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateGradientImage(4, 4)

	segments, err := NewRenderer().Render(img, Size{Width: 2, Height: 5})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	rows := splitRows(segments)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows for a height-5 target, got %d", len(rows))
	}

	// The extra row comes from stretching, not from transparent padding.
	for x, seg := range rows[2] {
		if seg.Style.Background.IsDefault() {
			t.Errorf("Expected a real pixel background at %d, got default", x)
		}
	}
}

func TestRenderZeroWidth(t *testing.T) {
	t.Parallel()

	img := imageutil.NewRGBAImage(0, 4)
	segments, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("Expected no segments for a zero-width image, got %d", len(segments))
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateColorBarsImage(16, 8)

	r := NewRenderer()
	first, err := r.Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := r.Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Same renderer produced different segments for the same image")
	}

	third, err := NewRenderer().Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !reflect.DeepEqual(first, third) {
		t.Error("Fresh renderer produced different segments for the same image")
	}
}

func TestRenderBlankOnTransparent(t *testing.T) {
	t.Parallel()

	// (0,*): opaque over transparent. (1,*): transparent over opaque.
	img := imageutil.NewRGBAImage(2, 2)
	img.SetRGB(0, 0, imageutil.RGB{R: 255, G: 0, B: 0})
	img.SetRGB(1, 1, imageutil.RGB{R: 0, G: 255, B: 0})

	segments, err := NewRenderer(WithBlankOnTransparent()).Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	row := splitRows(segments)[0]
	if row[0].Text != " " {
		t.Errorf("Expected a space over a transparent lower pixel, got %q", row[0].Text)
	}
	if !row[0].Style.Foreground.Equals(ColorRed) {
		t.Errorf("Expected red foreground kept on blank cell, got %q", row[0].Style.Foreground)
	}
	if row[1].Text != upperHalfBlock {
		t.Errorf("Expected half block over an opaque lower pixel, got %q", row[1].Text)
	}

	// A configured substitute disables blanking.
	segments, err = NewRenderer(
		WithBlankOnTransparent(),
		WithDefaultColor(RGB(0, 0, 64)),
	).Render(img, Size{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	row = splitRows(segments)[0]
	if row[0].Text != upperHalfBlock {
		t.Errorf("Expected half block with a substitute color, got %q", row[0].Text)
	}
}

func TestRenderInvalidResizeTarget(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateSolidImage(4, 4, imageutil.RGB{R: 1, G: 2, B: 3})

	if _, err := NewRenderer().Render(img, Size{Width: 0, Height: 5}); err == nil {
		t.Error("Expected an error for a zero-width resize target")
	}
	if _, err := NewRenderer().Render(img, Size{Width: -3, Height: 2}); err == nil {
		t.Error("Expected an error for a negative resize target")
	}
}

func BenchmarkRenderHalfcell(b *testing.B) {
	img := imageutil.CreateColorBarsImage(160, 96)
	r := NewRenderer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(img, Size{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderFullcell(b *testing.B) {
	img := imageutil.CreateColorBarsImage(160, 96)
	r := NewRenderer(WithGeometry(Fullcell))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(img, Size{}); err != nil {
			b.Fatal(err)
		}
	}
}
