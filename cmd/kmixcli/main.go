// Command kmixcli demonstrates the kmix pigment mixing engine.
//
// Search for recipes approximating a target color:
//
//	kmixcli -target "#2A7F7A" -medium watercolor -top 5
//
// Mix exact pigments directly:
//
//	kmixcli -mix "wc-pb29:60,wc-py35:40"
//
// Either mode can render a labelled swatch sheet with -out swatches.png.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/paintsci/kmix"
)

func main() {
	var (
		target  = flag.String("target", "", "target color as a hex string, e.g. #2A7F7A")
		mix     = flag.String("mix", "", "direct mix as id:amount pairs, e.g. wc-pb29:60,wc-py35:40")
		medium  = flag.String("medium", "", "restrict search to a medium: watercolor, gouache, acrylic, oil")
		maxPigs = flag.Int("max", 3, "maximum pigments per recipe (1-3)")
		top     = flag.Int("top", 10, "number of recipes to return")
		out     = flag.String("out", "", "write a swatch sheet PNG to this file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		kmix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cat := kmix.DefaultCatalog()

	switch {
	case *mix != "":
		runMix(cat, *mix, *out)
	case *target != "":
		runSearch(cat, *target, *medium, *maxPigs, *top, *out)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runSearch finds recipes for the target color and prints them ranked.
func runSearch(cat kmix.Catalog, target, medium string, maxPigs, top int, out string) {
	tc, err := colorful.Hex(target)
	if err != nil {
		log.Fatalf("bad target color %q: %v", target, err)
	}
	targetColor := kmix.RGB(tc.R, tc.G, tc.B)

	recipes := kmix.Search(cat, targetColor,
		kmix.WithMedium(kmix.Medium(medium)),
		kmix.WithMaxPigments(maxPigs),
		kmix.WithTopResults(top))
	if len(recipes) == 0 {
		fmt.Println("no recipes found")
		return
	}

	fmt.Printf("target %s\n", targetColor.Hex())
	for i, r := range recipes {
		rc := colorful.Color{R: r.Color.R, G: r.Color.G, B: r.Color.B}
		fmt.Printf("%2d. %-52s %s  spectral %.4f  ΔLab %.3f\n",
			i+1, formatParts(r.Parts), r.Color.Hex(), r.Distance, tc.DistanceLab(rc))
	}

	if out != "" {
		rows := []swatchRow{{label: "target " + targetColor.Hex(), color: targetColor}}
		for _, r := range recipes {
			rows = append(rows, swatchRow{label: formatParts(r.Parts), color: r.Color})
		}
		saveSwatches(out, rows)
	}
}

// runMix parses id:amount pairs, mixes them and prints the result.
func runMix(cat kmix.Catalog, spec, out string) {
	var layers []kmix.Layer
	for _, part := range strings.Split(spec, ",") {
		id, amountStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			log.Fatalf("bad mix part %q: want id:amount", part)
		}
		p, found := cat.Find(id)
		if !found {
			log.Fatalf("unknown pigment %q", id)
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			log.Fatalf("bad amount in %q: %v", part, err)
		}
		layers = append(layers, kmix.Layer{Pigment: p, Amount: amount})
	}

	c, ok := kmix.MixColor(layers)
	if !ok {
		log.Fatal("invalid mixture: no layers or zero total amount")
	}

	for _, l := range layers {
		fmt.Printf("%-24s %s  amount %g\n", l.Pigment.Name, l.Pigment.ID, l.Amount)
	}
	fmt.Printf("mixed color %s\n", c.Hex())

	if out != "" {
		rows := []swatchRow{{label: "mix " + c.Hex(), color: c}}
		for _, l := range layers {
			rows = append(rows, swatchRow{
				label: fmt.Sprintf("%s (%s)", l.Pigment.Name, l.Pigment.ID),
				color: l.Pigment.Reflectance().Color(),
			})
		}
		saveSwatches(out, rows)
	}
}

// formatParts renders recipe parts as "60% Ultramarine Blue + 40% Cadmium Yellow".
func formatParts(parts []kmix.Part) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprintf("%d%% %s", p.Percent, p.Pigment.Name)
	}
	return strings.Join(s, " + ")
}

// swatchRow is one strip of the rendered sheet: a color block and a label.
type swatchRow struct {
	label string
	color kmix.RGBA
}

const (
	swatchWidth  = 480
	rowHeight    = 40
	blockWidth   = 160
	labelPadding = 12
)

// saveSwatches renders the rows as a PNG sheet: a solid color block per
// row with the label beside it on an alternating light background.
func saveSwatches(path string, rows []swatchRow) {
	img := image.NewNRGBA(image.Rect(0, 0, swatchWidth, rowHeight*len(rows)))

	light := kmix.White
	dark := kmix.White.Lerp(kmix.Black, 0.06)
	for i, row := range rows {
		y0, y1 := i*rowHeight, (i+1)*rowHeight

		bg := light
		if i%2 == 1 {
			bg = dark
		}
		draw.Draw(img, image.Rect(blockWidth, y0, swatchWidth, y1),
			image.NewUniform(bg), image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, y0, blockWidth, y1),
			image.NewUniform(row.color), image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(blockWidth+labelPadding, y0+rowHeight/2+basicfont.Face7x13.Height/2-2),
		}
		d.DrawString(row.label)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("swatch sheet saved to %s (%d rows)", path, len(rows))
}
