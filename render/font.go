package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
)

// DisplayTypeface 注册到字体缓存中的显示字体名
const DisplayTypeface font.Typeface = "Display"

// FontConfig 渲染文字所需的字体配置
type FontConfig struct {
	Typeface font.Typeface // 标题与图例使用的字体
	Cache    *font.Cache   // 字体缓存
}

// Handler 返回基于该配置的文字排版处理器
func (fc *FontConfig) Handler() text.Handler {
	return text.Plain{Fonts: fc.Cache}
}

// fontCandidate 候选显示字体（按优先级排列的文件位置）
type fontCandidate struct {
	name  string
	paths []string
}

// displayCandidates 能渲染日文标题的系统字体候选列表
var displayCandidates = []fontCandidate{
	{"Hiragino Sans", []string{
		"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
		"/System/Library/Fonts/Hiragino Sans GB.ttc",
	}},
	{"Noto Sans CJK JP", []string{
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/opentype/noto/NotoSansCJKjp-Regular.otf",
		"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	}},
	{"Yu Gothic", []string{`C:\Windows\Fonts\YuGothM.ttc`}},
	{"Meiryo", []string{`C:\Windows\Fonts\meiryo.ttc`}},
}

// SetupFont 建立字体配置。
// 依优先级尝试候选字体文件, 第一个解析成功的注册为显示字体;
// 全部失败时回退到Liberation字族。任何失败都不会中断运行。
func SetupFont() *FontConfig {
	return setupFont(displayCandidates)
}

func setupFont(candidates []fontCandidate) *FontConfig {
	cache := font.NewCache(liberation.Collection())
	for _, cand := range candidates {
		face, err := loadFace(cand.paths)
		if err != nil {
			continue
		}
		cache.Add(font.Collection{{
			Font: font.Font{Typeface: DisplayTypeface, Variant: "Sans"},
			Face: face,
		}})
		fmt.Printf("日本語フォントを設定しました: %s\n", cand.name)
		return &FontConfig{Typeface: DisplayTypeface, Cache: cache}
	}
	fmt.Println("デフォルトのフォント設定を使用します")
	return &FontConfig{Typeface: "Liberation", Cache: cache}
}

// loadFace 读取并解析候选路径中的第一个可用字体文件
func loadFace(paths []string) (*opentype.Font, error) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if strings.EqualFold(filepath.Ext(p), ".ttc") {
			coll, err := opentype.ParseCollection(data)
			if err != nil {
				continue
			}
			f, err := coll.Font(0)
			if err != nil {
				continue
			}
			return f, nil
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		return f, nil
	}
	return nil, fmt.Errorf("no usable font file")
}
