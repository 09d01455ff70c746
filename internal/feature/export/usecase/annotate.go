package usecase

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/export/domain"
	"thumblytics/internal/shared/grading"
)

// 要素の種類ごとの枠の色
var (
	boxColorFace   = color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	boxColorText   = color.NRGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	boxColorObject = color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	labelTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const labelPadding = 2

var (
	faceKeywords = []string{"face", "person", "human", "head", "portrait"}
	textKeywords = []string{"text", "caption", "title", "subtitle", "overlay", "word", "letter"}
)

// Annotate は画像に検出オブジェクトの枠とラベル（"label 92%"）を描画し、PNGで返します。
// bboxが不正なオブジェクトは描画しません。
func Annotate(data []byte, result analysisentity.AnalysisResult) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	img := imaging.Clone(src)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	thickness := max(2, min(w, h)/200)

	for _, o := range result.DetectedObjects {
		box, ok := grading.NormalizeBBox(o.BBox)
		if !ok {
			continue
		}
		r := image.Rect(
			int(math.Round(box[0]*float64(w))),
			int(math.Round(box[1]*float64(h))),
			int(math.Round(box[2]*float64(w))),
			int(math.Round(box[3]*float64(h))),
		).Add(b.Min)

		c := boxColor(o)
		strokeRect(img, r, thickness, c)
		drawLabel(img, r, labelText(o), c)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func labelText(o analysisentity.DetectedObject) string {
	return fmt.Sprintf("%s %d%%", o.Label, int(math.Round(o.Confidence*100)))
}

func boxColor(o analysisentity.DetectedObject) color.NRGBA {
	kind := strings.ToLower(o.ElementType)
	label := strings.ToLower(o.Label)
	switch {
	case kind == "face" || containsAny(label, faceKeywords):
		return boxColorFace
	case kind == "text" || containsAny(label, textKeywords):
		return boxColorText
	default:
		return boxColorObject
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// strokeRect はrの内側に太さtの枠を描きます。
func strokeRect(img draw.Image, r image.Rectangle, t int, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, min(r.Min.Y+t, r.Max.Y)),
		image.Rect(r.Min.X, max(r.Max.Y-t, r.Min.Y), r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, min(r.Min.X+t, r.Max.X), r.Max.Y),
		image.Rect(max(r.Max.X-t, r.Min.X), r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e, u, image.Point{}, draw.Src)
	}
}

// drawLabel は枠の上にラベルを描きます。上に余白がない場合は枠の内側に描きます。
func drawLabel(img draw.Image, r image.Rectangle, text string, bg color.Color) {
	face := basicfont.Face7x13
	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := face.Metrics().Height.Ceil()

	lh := th + labelPadding*2
	top := r.Min.Y - lh
	if top < img.Bounds().Min.Y {
		top = r.Min.Y
	}
	bgRect := image.Rect(r.Min.X, top, r.Min.X+tw+labelPadding*2, top+lh).Intersect(img.Bounds())
	if bgRect.Empty() {
		return
	}
	draw.Draw(img, bgRect, image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelTextColor),
		Face: face,
		Dot:  fixed.P(r.Min.X+labelPadding, top+labelPadding+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
