// Package counter 计算乘法表中不同答案的数量。
package counter

import (
	"fmt"

	"multable/maths"
	"multable/types"
	"multable/utils"
)

// Count 计算n×m乘法表的不同答案。
// 遍历顺序固定: 外层i从1到n, 内层j从i到m, j<=n时把乘积镜像写入(j,i)。
// 首次出现标记只落在(i,j)侧, 镜像格永远不标记; 当n>m时内层区间为空的行
// 保持零值且不标记。该顺序决定了哪些格被视为"新答案", 不可改为全量扫描。
func Count(n, m int) (*types.Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("counter: n must be a positive integer, got %d", n)
	}
	if m < 1 {
		return nil, fmt.Errorf("counter: m must be a positive integer, got %d", m)
	}

	products := maths.NewDenseMatrix[int64](n, m)
	firstSeen := utils.NewMarkGrid(n, m)
	seen := make(map[int64]struct{})

	for i := 1; i <= n; i++ {
		for j := i; j <= m; j++ {
			v := int64(i) * int64(j)
			products.Set(i-1, j-1, v)
			if j <= n {
				// 镜像格在矩阵范围内时同步写入
				products.Set(j-1, i-1, v)
			}
			if _, ok := seen[v]; !ok {
				firstSeen.Mark(i-1, j-1)
				seen[v] = struct{}{}
			}
		}
	}

	return &types.Result{
		N:         n,
		M:         m,
		Products:  products,
		FirstSeen: firstSeen,
		Distinct:  seen,
		Count:     len(seen),
	}, nil
}
