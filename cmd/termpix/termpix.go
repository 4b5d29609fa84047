package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/wbrown/termpix"
	"github.com/wbrown/termpix/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file")
	text := flag.String("text", "",
		"Render a text banner instead of an image file")
	mode := flag.String("mode", "half",
		"Cell geometry: half (two pixels per cell) or full (one pixel per cell pair)")
	width := flag.Int("width", 0,
		"Target width in pixels (0 = fit the terminal)")
	height := flag.Int("height", 0,
		"Target height in pixels (0 = fit the terminal)")
	background := flag.String("bg", "",
		"Color substituted for transparent pixels, e.g. 'navy' or 'rgb(0,0,64)'")
	blank := flag.Bool("blank", false,
		"Emit spaces instead of half blocks over unmatched transparency")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	screenMode := flag.Bool("screen", false,
		"Display on an interactive screen until a key is pressed")
	fontSize := flag.Float64("fontsize", 16,
		"Font size in points for -text")
	textColor := flag.String("textcolor", "white",
		"Glyph color for -text")
	flag.Parse()

	if *inputFile == "" && *text == "" {
		fmt.Println("Please provide an image with -input or a banner with -text")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var geometry termpix.Geometry
	switch strings.ToLower(*mode) {
	case "half":
		geometry = termpix.Halfcell
	case "full":
		geometry = termpix.Fullcell
	default:
		fmt.Println("Invalid mode, options are half or full")
		os.Exit(1)
	}

	rendererOpts := []termpix.RendererOption{termpix.WithGeometry(geometry)}
	if *background != "" {
		c, err := termpix.ParseColor(*background)
		if err != nil {
			fmt.Printf("Invalid -bg color: %v\n", err)
			os.Exit(1)
		}
		rendererOpts = append(rendererOpts, termpix.WithDefaultColor(c))
	}
	if *blank {
		rendererOpts = append(rendererOpts, termpix.WithBlankOnTransparent())
	}
	renderer := termpix.NewRenderer(rendererOpts...)

	var source *imageutil.RGBAImage
	var err error
	if *text != "" {
		source, err = textSource(*text, *fontSize, *textColor)
	} else {
		source, err = imageutil.LoadImage(*inputFile)
	}
	if err != nil {
		fmt.Printf("Error loading source: %v\n", err)
		os.Exit(1)
	}

	opts := []termpix.Option{termpix.WithRenderer(renderer)}
	targetW, targetH := completeTarget(source.Width(), source.Height(), *width, *height, geometry)
	if targetW != source.Width() || targetH != source.Height() {
		opts = append(opts, termpix.WithResize(targetW, targetH))
	}

	pixels, err := termpix.FromImage(source, opts...)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	if *screenMode {
		if err := showOnScreen(pixels); err != nil {
			fmt.Printf("Error displaying: %v\n", err)
			os.Exit(1)
		}
		return
	}

	out := pixels.String()
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0644); err != nil {
			fmt.Printf("Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
		return
	}
	fmt.Print(out)
}

// textSource rasterizes the banner text into a pixel grid.
func textSource(text string, size float64, colorSpec string) (*imageutil.RGBAImage, error) {
	c, err := termpix.ParseColor(colorSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid -textcolor: %w", err)
	}
	return termpix.RasterizeText(text,
		termpix.WithFontSize(size),
		termpix.WithTextColor(c))
}

// completeTarget fills in missing target dimensions from the source
// aspect ratio, fitting to the terminal when neither is given.
func completeTarget(srcW, srcH, width, height int, geometry termpix.Geometry) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return srcW, srcH
	}
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, max(width*srcH/srcW, 1)
	case height > 0:
		return max(height*srcW/srcH, 1), height
	default:
		maxW, maxH := terminalBudget(geometry)
		return imageutil.Fit(srcW, srcH, maxW, maxH)
	}
}

// terminalBudget converts the terminal size to a pixel budget for the
// given geometry, keeping one row free for the shell prompt.
func terminalBudget(geometry termpix.Geometry) (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 1 {
		cols, rows = 80, 24
	}
	rows--
	if geometry == termpix.Fullcell {
		return cols / 2, rows
	}
	return cols, rows * 2
}

// showOnScreen displays the pixels on a terminal screen until a key is
// pressed, redrawing on resize.
func showOnScreen(pixels *termpix.Pixels) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.Clear()
	pixels.Draw(screen, 0, 0)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Clear()
			pixels.Draw(screen, 0, 0)
			screen.Sync()
		}
	}
}
