package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/mgraves/go-sphere-tracer/pkg/renderer"
	"github.com/mgraves/go-sphere-tracer/pkg/scene"
)

const (
	imageWidth  = 800
	imageHeight = 600
)

func main() {
	fmt.Printf("raytracer %dx%d\n", imageWidth, imageHeight)

	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s <output_file>\n", os.Args[0])
		return
	}

	pixels := make([]byte, imageWidth*imageHeight*3)

	rt := renderer.NewRaytracer(scene.NewDefaultScene(), imageWidth, imageHeight)
	config := renderer.DefaultSamplingConfig()
	config.Workers = 0 // one worker per CPU
	rt.SetSamplingConfig(config)

	startTime := time.Now()
	rt.Render(pixels)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writeImage(os.Args[1], pixels, imageWidth, imageHeight); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
}

// writeImage encodes a raw RGB8 buffer (row-major, top row first) as an
// 8-bit RGB PNG file
func writeImage(filename string, pixels []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = pixels[i*3+0]
		img.Pix[i*4+1] = pixels[i*3+1]
		img.Pix[i*4+2] = pixels[i*3+2]
		img.Pix[i*4+3] = 255
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
