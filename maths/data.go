package maths

import "fmt"

// dataManager 提供了 DataManager 接口的通用实现。
type dataManager[T Integer] struct {
	data []T
}

// NewDataManager 创建一个指定长度的新的 DataManager。
func NewDataManager[T Integer](length int) DataManager[T] {
	return &dataManager[T]{
		data: make([]T, length),
	}
}

// NewDataManagerWithData 使用给定的数据切片创建一个新的 DataManager。
func NewDataManagerWithData[T Integer](data []T) DataManager[T] {
	return &dataManager[T]{
		data: data,
	}
}

// Length 返回数据的长度。
func (dm *dataManager[T]) Length() int {
	return len(dm.data)
}

// String 返回数据的字符串表示形式。
func (dm *dataManager[T]) String() string {
	return fmt.Sprintf("%v", dm.data)
}

// Get 返回指定索引处的值。
func (dm *dataManager[T]) Get(index int) T {
	return dm.data[index]
}

// Set 设置指定索引处的值。
func (dm *dataManager[T]) Set(index int, value T) {
	dm.data[index] = value
}

// DataCopy 返回数据的切片副本。
func (dm *dataManager[T]) DataCopy() []T {
	out := make([]T, len(dm.data))
	copy(out, dm.data)
	return out
}

// DataPtr 返回数据的切片引用。
func (dm *dataManager[T]) DataPtr() []T {
	return dm.data
}

// Zero 将所有元素设置为零。
func (dm *dataManager[T]) Zero() {
	clear(dm.data)
}

// NonZeroCount 统计非零元素数量。
func (dm *dataManager[T]) NonZeroCount() int {
	count := 0
	for _, v := range dm.data {
		if v != 0 {
			count++
		}
	}
	return count
}

// Copy 复制数据到目标管理器（长度不一致panic）。
func (dm *dataManager[T]) Copy(target DataManager[T]) {
	if target.Length() != len(dm.data) {
		panic(fmt.Sprintf("length mismatch: source %d, target %d", len(dm.data), target.Length()))
	}
	copy(target.DataPtr(), dm.data)
}
