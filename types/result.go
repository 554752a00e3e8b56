package types

import (
	"sort"

	"multable/maths"
	"multable/utils"
)

// Result 乘法表分析结果（一次计算产出, 之后不再修改）
type Result struct {
	N, M      int                 // 表的行数与列数
	Products  maths.Matrix[int64] // N×M乘积矩阵
	FirstSeen *utils.MarkGrid     // 首次出现标记矩阵
	Distinct  map[int64]struct{}  // 不同乘积的集合
	Count     int                 // 不同乘积的数量
}

// SortedDistinct 返回按升序排列的不同乘积列表
func (r *Result) SortedDistinct() []int64 {
	out := make([]int64, 0, len(r.Distinct))
	for v := range r.Distinct {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
