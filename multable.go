// Package multable 计算并可视化n×m乘法表中不同答案的数量。
package multable

import (
	"fmt"

	"multable/counter"
	"multable/render"
	"multable/types"
)

// Analyze 计算n×m乘法表的不同答案
func Analyze(n, m int) (*types.Result, error) {
	return counter.Count(n, m)
}

// Visualize 分析乘法表并把可视化结果保存到path。
// 字体配置在渲染前由本入口显式建立一次, 不依赖包加载副作用。
// 返回不同答案的数量与升序排列的答案列表。
func Visualize(n, m int, path string) (int, []int64, error) {
	res, err := counter.Count(n, m)
	if err != nil {
		return 0, nil, err
	}
	return render.Render(res, path, render.SetupFont())
}

// DefaultPath 由排序后的(min,max)生成默认输出文件名
func DefaultPath(n, m int) string {
	smaller, larger := n, m
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	return fmt.Sprintf("multiplication_table_%d×%d.png", smaller, larger)
}
