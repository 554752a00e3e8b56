package maths

// Integer 是一个约束，允许乘法表使用的任何整数类型
type Integer interface {
	~int | ~int32 | ~int64
}

// DataManager 一维数据管理器（底层存储核心）
type DataManager[T Integer] interface {
	// 基础属性方法
	Length() int    // 获取数据长度
	String() string // 返回数据的字符串表示

	// 数据访问方法
	Get(index int) T        // 获取指定索引处的元素值
	Set(index int, value T) // 设置指定索引处的元素值

	// 数据操作和转换方法
	DataCopy() []T // 返回数据的切片副本
	DataPtr() []T  // 返回数据的切片引用（直接操作底层数据）

	// 数据修改方法
	Zero() // 清空所有数据

	// 统计和复制方法
	NonZeroCount() int          // 统计非零元素数量
	Copy(target DataManager[T]) // 复制数据到目标管理器
}

// Matrix 二维矩阵接口（行主序存储）
type Matrix[T Integer] interface {
	// 基础属性方法
	Base() Matrix[T] // 获取底层
	Rows() int       // 矩阵行数
	Cols() int       // 矩阵列数
	IsSquare() bool  // 判断是否为方阵
	String() string  // 返回矩阵的字符串表示

	// 数据访问方法
	Get(row int, col int) T             // 获取指定行列元素值（越界panic）
	Set(row int, col int, value T)      // 设置指定行列元素值（越界panic）
	SetSymmetric(row, col int, value T) // 同时写入(row,col)与(col,row)（镜像越界panic）
	GetRow(row int) []T                 // 获取指定行的副本

	// 数据修改和统计方法
	Zero()                  // 清空矩阵为零矩阵
	NonZeroCount() int      // 统计非零元素数量
	Equal(a Matrix[T]) bool // 判断两矩阵维度与元素是否全等
	Copy(a Matrix[T])       // 复制自身数据到目标矩阵
}
