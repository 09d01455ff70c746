package grading

// bboxScale はバックエンドが返す座標の最大値です（0〜1000）。
const bboxScale = 1000.0

// NormalizeBBox は[xmin, ymin, xmax, ymax]を0〜1の座標に揃えます。
// すべての値が1以下なら0〜1、それ以外は0〜1000のスケールとみなします。
// 要素が4つない場合や、幅・高さが正でない場合はokがfalseになります。
func NormalizeBBox(bbox []float64) (box [4]float64, ok bool) {
	if len(bbox) != 4 {
		return box, false
	}
	scale := 1.0
	for _, v := range bbox {
		if v > 1 {
			scale = bboxScale
			break
		}
	}
	for i, v := range bbox {
		box[i] = clamp01(v / scale)
	}
	if box[2] <= box[0] || box[3] <= box[1] {
		return box, false
	}
	return box, true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Position はバウンディングボックスの中心を3×3のグリッドに分類します。
// 例: "center", "top-left", "center-right", "bottom-center"。
// bboxが不正な場合は空文字を返します。
func Position(bbox []float64) string {
	box, ok := NormalizeBBox(bbox)
	if !ok {
		return ""
	}
	cx := (box[0] + box[2]) / 2 * bboxScale
	cy := (box[1] + box[3]) / 2 * bboxScale

	h := third(cx, "left", "center", "right")
	v := third(cy, "top", "center", "bottom")

	switch {
	case v == "center" && h == "center":
		return "center"
	case v == "center":
		return "center-" + h
	default:
		return v + "-" + h
	}
}

func third(c float64, low, mid, high string) string {
	switch {
	case c < 333:
		return low
	case c < 666:
		return mid
	default:
		return high
	}
}
