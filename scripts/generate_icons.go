//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// heights - высоты столбиков волны в процентах от половины иконки.
var heights = []int{35, 70, 100, 60, 30}

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{128, 128, 128, 255}},
		{"icon_recording.png", color.RGBA{220, 50, 50, 255}},
		{"icon_playing.png", color.RGBA{60, 170, 90, 255}},
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("generate %s: %v", icon.name, err)
		}
		log.Printf("written %s", path)
	}
}

// generateIcon рисует пять вертикальных столбиков, как на поверхности волны.
func generateIcon(path string, c color.RGBA) error {
	const (
		size = 64
		bar  = 8
		gap  = 4
	)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	left := (size - len(heights)*bar - (len(heights)-1)*gap) / 2
	for i, h := range heights {
		half := (size / 2) * h / 100
		x0 := left + i*(bar+gap)
		for y := size/2 - half; y < size/2+half; y++ {
			for x := x0; x < x0+bar; x++ {
				img.Set(x, y, c)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
