package utils

import "fmt"

// MarkGrid 基于位图的二维布尔标记网格（行主序）
type MarkGrid struct {
	bitmap Bitmap
	rows   int
	cols   int
}

// NewMarkGrid 创建指定维度的空标记网格（维度非正panic）
func NewMarkGrid(rows, cols int) *MarkGrid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid grid dimensions: %dx%d", rows, cols))
	}
	return &MarkGrid{
		bitmap: NewBitmap(rows * cols),
		rows:   rows,
		cols:   cols,
	}
}

// index 行列坐标转位图索引（越界panic）
func (g *MarkGrid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("index out of range: (%d, %d) in %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Rows 网格行数
func (g *MarkGrid) Rows() int { return g.rows }

// Cols 网格列数
func (g *MarkGrid) Cols() int { return g.cols }

// Mark 设置指定位置的标记
func (g *MarkGrid) Mark(row, col int) {
	g.bitmap.Set(g.index(row, col), true)
}

// Marked 获取指定位置的标记
func (g *MarkGrid) Marked(row, col int) bool {
	return g.bitmap.Get(g.index(row, col))
}

// Count 已标记位置的数量
func (g *MarkGrid) Count() int {
	return g.bitmap.FlagCount(true)
}
