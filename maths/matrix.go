package maths

import (
	"fmt"
	"strings"
)

// denseMatrix 稠密矩阵实现（基于DataManager，行主序全量存储所有元素）
type denseMatrix[T Integer] struct {
	DataManager[T] // 嵌入数据管理器复用功能
	rows, cols     int
}

// NewDenseMatrix 创建指定维度的空稠密矩阵（维度非正panic）
func NewDenseMatrix[T Integer](rows, cols int) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid matrix dimensions: %dx%d", rows, cols))
	}
	return &denseMatrix[T]{
		DataManager: NewDataManager[T](rows * cols),
		rows:        rows,
		cols:        cols,
	}
}

// Base 获取底层
func (m *denseMatrix[T]) Base() Matrix[T] {
	return m
}

// Rows 返回矩阵行数
func (m *denseMatrix[T]) Rows() int {
	return m.rows
}

// Cols 返回矩阵列数
func (m *denseMatrix[T]) Cols() int {
	return m.cols
}

// IsSquare 判断是否为方阵
func (m *denseMatrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// index 行列坐标转一维索引（越界panic）
func (m *denseMatrix[T]) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("index out of range: (%d, %d) in %dx%d matrix", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// Get 获取指定行列元素值（越界panic）
func (m *denseMatrix[T]) Get(row int, col int) T {
	return m.DataManager.Get(m.index(row, col))
}

// Set 设置指定行列元素值（越界panic）
func (m *denseMatrix[T]) Set(row int, col int, value T) {
	m.DataManager.Set(m.index(row, col), value)
}

// SetSymmetric 同时写入(row,col)与镜像位置(col,row)
func (m *denseMatrix[T]) SetSymmetric(row, col int, value T) {
	m.Set(row, col, value)
	if row != col {
		m.Set(col, row, value)
	}
}

// GetRow 获取指定行的副本
func (m *denseMatrix[T]) GetRow(row int) []T {
	start := m.index(row, 0)
	out := make([]T, m.cols)
	copy(out, m.DataManager.DataPtr()[start:start+m.cols])
	return out
}

// Zero 清空矩阵为零矩阵
func (m *denseMatrix[T]) Zero() {
	m.DataManager.Zero()
}

// NonZeroCount 统计非零元素数量
func (m *denseMatrix[T]) NonZeroCount() int {
	return m.DataManager.NonZeroCount()
}

// Equal 判断两矩阵维度与元素是否全等
func (m *denseMatrix[T]) Equal(a Matrix[T]) bool {
	if a.Rows() != m.rows || a.Cols() != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.Get(i, j) != a.Get(i, j) {
				return false
			}
		}
	}
	return true
}

// Copy 复制自身数据到目标矩阵（支持异类型实现）
func (m *denseMatrix[T]) Copy(a Matrix[T]) {
	if a.Rows() != m.rows || a.Cols() != m.cols {
		panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, a.Rows(), a.Cols()))
	}
	switch target := a.Base().(type) {
	case *denseMatrix[T]:
		// 同类型直接复制（高效）
		m.DataManager.Copy(target.DataManager)
	default:
		// 异类型逐个元素复制
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				a.Set(i, j, m.Get(i, j))
			}
		}
	}
}

// String 返回矩阵的字符串表示（每行一行）
func (m *denseMatrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		fmt.Fprintf(&sb, "%v\n", m.GetRow(i))
	}
	return sb.String()
}
