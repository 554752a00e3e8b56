package utils

import "testing"

func TestBitmapSetGet(t *testing.T) {
	// 1. 创建位图并设置一些标记
	b := NewBitmap(100)
	b.Set(0, true)
	b.Set(63, true)
	b.Set(64, true)
	b.Set(99, true)

	// 2. 验证跨uint64边界的标记读回
	for _, bit := range []int{0, 63, 64, 99} {
		if !b.Get(bit) {
			t.Errorf("希望位%d为真, 得到假", bit)
		}
	}
	if b.Get(1) {
		t.Error("希望未设置的位1为假, 得到真")
	}

	// 3. 清除标记后读回为假
	b.Set(63, false)
	if b.Get(63) {
		t.Error("希望清除后的位63为假, 得到真")
	}
}

func TestBitmapFlagCount(t *testing.T) {
	// 1. 设置3个标记
	b := NewBitmap(70)
	b.Set(1, true)
	b.Set(64, true)
	b.Set(69, true)

	// 2. 验证真假标记数量
	if b.FlagCount(true) != 3 {
		t.Errorf("希望有3个真标记, 得到 %d", b.FlagCount(true))
	}
	if b.FlagCount(false) != 67 {
		t.Errorf("希望有67个假标记, 得到 %d", b.FlagCount(false))
	}
}

func TestBitmapOutOfRange(t *testing.T) {
	// 1. 越界设置被忽略, 越界读取返回假
	b := NewBitmap(8)
	b.Set(8, true)
	b.Set(-1, true)
	if b.Get(8) || b.Get(-1) {
		t.Error("希望越界读取返回假")
	}
	if b.FlagCount(true) != 0 {
		t.Errorf("希望越界设置被忽略, 得到 %d 个标记", b.FlagCount(true))
	}
}

func TestMarkGrid(t *testing.T) {
	// 1. 创建网格并标记若干位置
	g := NewMarkGrid(3, 4)
	g.Mark(0, 0)
	g.Mark(1, 3)
	g.Mark(2, 2)

	// 2. 验证标记读回与数量
	if !g.Marked(1, 3) {
		t.Error("希望(1,3)被标记, 得到假")
	}
	if g.Marked(1, 2) {
		t.Error("希望(1,2)未被标记, 得到真")
	}
	if g.Count() != 3 {
		t.Errorf("希望有3个标记, 得到 %d", g.Count())
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("希望网格为3x4, 得到 %dx%d", g.Rows(), g.Cols())
	}
}

func TestMarkGridOutOfRange(t *testing.T) {
	// 1. 越界访问应当panic
	defer func() {
		if recover() == nil {
			t.Error("希望越界访问panic, 但没有发生")
		}
	}()
	g := NewMarkGrid(2, 2)
	g.Marked(0, 2)
}
