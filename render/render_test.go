package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"multable/counter"
	"multable/types"
)

// decodeSaved 渲染并保存后重新解码图像
func decodeSaved(t *testing.T, n, m int, name string) image.Image {
	t.Helper()
	res, err := counter.Count(n, m)
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if _, _, err := Render(res, path, setupFont(nil)); err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("打开输出文件失败: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("解码PNG失败: %v", err)
	}
	return img
}

func TestRenderCanvasPixelSize(t *testing.T) {
	// 1. 渲染3×4乘法表
	img := decodeSaved(t, 3, 4, "table.png")

	// 2. 验证画布像素尺寸: 宽 = 4*50 + 1.5英寸*300, 高 = 3*50 + 0.8英寸*300
	if got := img.Bounds().Dx(); got != 4*types.CellPixels+450 {
		t.Errorf("希望画布宽为650像素, 得到 %d", got)
	}
	if got := img.Bounds().Dy(); got != 3*types.CellPixels+240 {
		t.Errorf("希望画布高为390像素, 得到 %d", got)
	}
}

func TestRenderGeometryIndependentOfText(t *testing.T) {
	// 1. 不同的计数与标题长度下, 网格区几何只取决于n与m
	small := decodeSaved(t, 2, 2, "small.png")
	big := decodeSaved(t, 20, 20, "big.png")

	// 2. 宽高差值正好等于单元格数量差
	dw := big.Bounds().Dx() - small.Bounds().Dx()
	dh := big.Bounds().Dy() - small.Bounds().Dy()
	if dw != 18*types.CellPixels {
		t.Errorf("希望宽度差为 %d, 得到 %d", 18*types.CellPixels, dw)
	}
	if dh != 18*types.CellPixels {
		t.Errorf("希望高度差为 %d, 得到 %d", 18*types.CellPixels, dh)
	}
}

func TestRenderCellColors(t *testing.T) {
	// 1. 渲染2×2表: (0,0)为新答案, (1,0)为镜像重复格
	img := decodeSaved(t, 2, 2, "colors.png")

	// 2. 新答案格中心应为红色主导
	// 网格占画布左下 2*50 x 2*50 像素; 顶行i=0在上方槽位
	top := img.Bounds().Dy() - 2*types.CellPixels
	r, g, _, _ := img.At(25, top+25).RGBA()
	if r <= g {
		t.Errorf("希望新答案格为红色主导, 得到 r=%d g=%d", r, g)
	}

	// 3. 重复格中心应接近白色（红绿通道相等）
	r, g, b, _ := img.At(25, top+75).RGBA()
	if r != g || g != b {
		t.Errorf("希望重复格为中性色, 得到 r=%d g=%d b=%d", r, g, b)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	// 1. 不支持的扩展名返回错误
	res, err := counter.Count(2, 2)
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	path := filepath.Join(t.TempDir(), "table.bmp")
	if _, _, err := Render(res, path, setupFont(nil)); err == nil {
		t.Error("希望不支持的格式返回错误, 得到nil")
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	// 1. 不可写路径返回错误（交付物无法写出时必须失败）
	res, err := counter.Count(2, 2)
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	path := filepath.Join(t.TempDir(), "no-such-dir", "table.png")
	if _, _, err := Render(res, path, setupFont(nil)); err == nil {
		t.Error("希望不可写路径返回错误, 得到nil")
	}
}

func TestSetupFontFallback(t *testing.T) {
	// 1. 候选文件全部不存在时回退到Liberation字族
	fc := setupFont([]fontCandidate{{"missing", []string{"/no/such/font.otf"}}})
	if fc == nil || fc.Cache == nil {
		t.Fatal("希望回退配置非空")
	}
	if fc.Typeface != "Liberation" {
		t.Errorf("希望回退字体为Liberation, 得到 %q", fc.Typeface)
	}
	if fc.Handler() == nil {
		t.Error("希望排版处理器非空")
	}
}
