// Package render 把乘法表分析结果绘制为栅格图像。
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"multable/types"
)

// 由固定像素尺寸换算的画布几何（vg长度单位为点, 1英寸=72点）
var (
	cellSize   = vg.Length(types.CellPixels) * vg.Inch / vg.Length(types.DPI)
	titleBand  = vg.Length(types.TitleInches) * vg.Inch
	legendBand = vg.Length(types.LegendInches) * vg.Inch
)

// Render 绘制乘法表并保存到path指定的图像文件。
// 返回不同答案的数量与升序排列的答案列表。
func Render(res *types.Result, path string, fc *FontConfig) (int, []int64, error) {
	canvas := NewCanvas(res, fc)
	if err := Save(canvas, path); err != nil {
		return 0, nil, err
	}
	fmt.Printf("画像を保存しました: %s\n", path)
	fmt.Printf("ユニークな答えの数: %d個\n", res.Count)
	return res.Count, res.SortedDistinct(), nil
}

// NewCanvas 按固定几何绘制画布。
// 分两趟: 先画单元格网格, 再叠加标题与图例。网格区固定占据画布左下
// M×CellPixels 宽 N×CellPixels 高的像素区域, 与文字内容无关。
func NewCanvas(res *types.Result, fc *FontConfig) *vgimg.Canvas {
	gridW := vg.Length(res.M) * cellSize
	gridH := vg.Length(res.N) * cellSize
	c := vgimg.NewWith(
		vgimg.UseWH(gridW+legendBand, gridH+titleBand),
		vgimg.UseDPI(types.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(c)
	drawCells(draw.Crop(dc, 0, -legendBand, 0, -titleBand), res)
	drawAnnotations(dc, res, fc, gridW, gridH)
	return c
}

// drawCells 逐格绘制网格。
// 逻辑第i行（i=0为顶行）落在从底部数第N-1-i个槽位, 列j直接映射横向位置。
func drawCells(dc draw.Canvas, res *types.Result) {
	border := draw.LineStyle{Color: types.BorderColor, Width: vg.Points(1)}
	for i := 0; i < res.N; i++ {
		y := dc.Min.Y + vg.Length(res.N-1-i)*cellSize
		for j := 0; j < res.M; j++ {
			x := dc.Min.X + vg.Length(j)*cellSize
			fill := types.RepeatColor
			if res.FirstSeen.Marked(i, j) {
				fill = types.NewColor
			}
			pts := []vg.Point{
				{X: x, Y: y},
				{X: x + cellSize, Y: y},
				{X: x + cellSize, Y: y + cellSize},
				{X: x, Y: y + cellSize},
			}
			dc.FillPolygon(fill, pts)
			dc.StrokeLines(border, append(pts, pts[0]))
		}
	}
}

// drawAnnotations 叠加标题与图例, 两者都不进入网格区。
func drawAnnotations(dc draw.Canvas, res *types.Result, fc *FontConfig, gridW, gridH vg.Length) {
	handler := fc.Handler()
	title := fmt.Sprintf("%d×%dの掛け算表（答えの数: %d個）", res.N, res.M, res.Count)
	titleSty := text.Style{
		Color:   types.BorderColor,
		Font:    font.Font{Typeface: fc.Typeface, Variant: "Sans", Size: vg.Points(16)},
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: handler,
	}
	dc.FillText(titleSty, vg.Point{X: dc.Min.X + gridW/2, Y: dc.Min.Y + gridH + titleBand/2}, title)

	labelSty := text.Style{
		Color:   types.BorderColor,
		Font:    font.Font{Typeface: fc.Typeface, Variant: "Sans", Size: vg.Points(10)},
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: handler,
	}
	border := draw.LineStyle{Color: types.BorderColor, Width: vg.Points(1)}
	entries := []struct {
		fill  color.Color
		label string
	}{
		{types.NewColor, "新しい答え"},
		{types.RepeatColor, "既に出現した答え"},
	}
	swatch := vg.Points(12)
	rowStep := vg.Points(20)
	x := dc.Min.X + gridW + vg.Points(6)
	y := dc.Min.Y + gridH - rowStep
	for _, e := range entries {
		pts := []vg.Point{
			{X: x, Y: y},
			{X: x + swatch, Y: y},
			{X: x + swatch, Y: y + swatch},
			{X: x, Y: y + swatch},
		}
		dc.FillPolygon(e.fill, pts)
		dc.StrokeLines(border, append(pts, pts[0]))
		dc.FillText(labelSty, vg.Point{X: x + swatch + vg.Points(4), Y: y + swatch/2}, e.label)
		y -= rowStep
	}
}

// Save 按扩展名选择编码并写出画布（写入失败为致命错误）
func Save(c *vgimg.Canvas, path string) error {
	var wt io.WriterTo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		wt = vgimg.PngCanvas{Canvas: c}
	case ".jpg", ".jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case ".tif", ".tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	default:
		return fmt.Errorf("render: unsupported image format %q", filepath.Ext(path))
	}
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer w.Close()
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
