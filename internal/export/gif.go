// Package export writes frozen frames and sequences to image formats.
// Everything here runs after a sequence is fully built, so concurrent
// frame encoding never touches live marker state.
package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/astrokit/stardrift/internal/animate"
	"github.com/astrokit/stardrift/internal/render"
)

// Each character cell rasterizes to charW x charH pixels; a braille dot
// is a charW/2 x charH/4 block.
const (
	charW = 8
	charH = 16
)

// Braille dot-to-bit mapping, dots addressed [row][col].
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const gapCells = 2

// SequenceGIF encodes a whole sequence as a looping animated GIF with
// the sequence's own frame interval. Frames rasterize on a bounded set
// of workers into an index-addressed slice, so output order is always
// build order.
func SequenceGIF(w io.Writer, seq *animate.Sequence, p render.Palette) error {
	if seq == nil || seq.Len() == 0 {
		return errors.New("export: empty sequence")
	}

	pal := gifPalette(p)
	images := make([]*image.Paletted, seq.Len())

	workers := runtime.NumCPU()
	if workers > seq.Len() {
		workers = seq.Len()
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				images[i] = rasterize(seq.Frame(i), p, pal)
			}
		}()
	}
	for i := 0; i < seq.Len(); i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// GIF delays are in centiseconds.
	delay := int(seq.Interval() / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	anim := gif.GIF{LoopCount: 0}
	for _, img := range images {
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// gifPalette samples the color ramp into an indexed palette: background
// first, then chart furniture gray, ramp colors, and foreground white.
func gifPalette(p render.Palette) color.Palette {
	pal := color.Palette{
		color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
		color.RGBA{0x44, 0x44, 0x55, 0xff},
	}
	const rampColors = 62
	for i := 0; i < rampColors; i++ {
		t := float64(i) / float64(rampColors-1)
		pal = append(pal, p.At(t).RGBA())
	}
	return append(pal, color.RGBA{0xff, 0xff, 0xff, 0xff})
}

func rasterize(snap render.Snapshot, p render.Palette, pal color.Palette) *image.Paletted {
	skyW, spaceW := snap.Sky.Width(), snap.Space.Width()
	rows := snap.Sky.Height()
	if snap.Space.Height() > rows {
		rows = snap.Space.Height()
	}

	cellsW := skyW + gapCells + spaceW
	imgW, imgH := cellsW*charW, (rows+1)*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal)

	drawGrid(img, snap.Sky, 0, pal)
	drawGrid(img, snap.Space, (skyW+gapCells)*charW, pal)

	// Legend ramp strip along the bottom row.
	for x := 0; x < imgW; x++ {
		t := float64(x) / float64(imgW-1)
		idx := uint8(pal.Index(p.At(t).RGBA()))
		for y := rows * charH; y < imgH; y++ {
			img.SetColorIndex(x, y, idx)
		}
	}
	return img
}

func drawGrid(img *image.Paletted, g render.CellGrid, offX int, pal color.Palette) {
	cache := map[render.RGB]uint8{}
	index := func(c render.RGB) uint8 {
		if idx, ok := cache[c]; ok {
			return idx
		}
		idx := uint8(pal.Index(c.RGBA()))
		cache[c] = idx
		return idx
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			r := g.Runes[row][col]
			baseX, baseY := offX+col*charW, row*charH

			if r < 0x2800 || r > 0x28ff {
				// Overlay rune: a solid block keeps it visible at GIF scale.
				idx := index(g.Colors[row][col])
				for py := 0; py < charH; py++ {
					for px := 0; px < charW; px++ {
						img.SetColorIndex(baseX+px, baseY+py, idx)
					}
				}
				continue
			}

			pattern := int(r - 0x2800)
			if pattern == 0 {
				continue
			}
			idx := index(g.Colors[row][col])
			dotW, dotH := charW/2, charH/4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}
}
