package types

import "image/color"

// 画布几何常量定义
const (
	CellPixels = 50  // 单元格边长（像素）
	DPI        = 300 // 输出分辨率（像素/英寸）
)

// 画布边带常量定义（英寸）
var (
	TitleInches  = 0.8 // 标题区高度
	LegendInches = 1.5 // 图例区宽度
)

// 单元格配色定义（透明度0.7已合入Alpha通道）
var (
	NewColor    = color.NRGBA{R: 0xff, A: 0xb2}                   // 首次出现的答案
	RepeatColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb2} // 已出现过的答案
	BorderColor = color.NRGBA{A: 0xff}                            // 单元格边框
)
