package palettize_test

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hupe1980/palettize"
	"github.com/hupe1980/palettize/colorvec"
)

func Example() {
	palette := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	}

	m, err := palettize.New(palette)
	if err != nil {
		log.Fatal(err)
	}

	idx, _ := m.Resolve(color.RGBA{R: 250, G: 10, A: 255})
	fmt.Println(idx)

	// Exact palette colors resolve without a scan once memoized.
	idx, _ = m.Resolve(color.RGBA{B: 255, A: 255})
	fmt.Println(idx)

	// Output:
	// 0
	// 2
}

func Example_rgbaConverter() {
	palette := color.Palette{
		color.RGBA{A: 255},                         // black
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, // white
	}

	m, err := palettize.New(palette, func(o *palettize.Options) {
		o.Converter = colorvec.NewRGBA()
	})
	if err != nil {
		log.Fatal(err)
	}

	idx, nearest := m.Resolve(color.RGBA{R: 30, G: 30, B: 30, A: 255})
	fmt.Println(idx, nearest == palette[0])

	// Output:
	// 0 true
}
