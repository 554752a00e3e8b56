package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"multable"
)

func main() {
	n := flag.Int("n", 100, "乘法表的行数")
	m := flag.Int("m", 100, "乘法表的列数")
	out := flag.String("o", "", "输出图像路径（默认由排序后的(min,max)生成）")
	noShow := flag.Bool("no-show", false, "保存后不打开图像查看器")
	flag.Parse()

	path := *out
	if path == "" {
		path = multable.DefaultPath(*n, *m)
	}

	_, distinct, err := multable.Visualize(*n, *m, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\n%d×%dの掛け算表で見つかったユニークな答え:\n", *n, *m)
	fmt.Println(distinct)

	if !*noShow {
		show(path)
	}
}

// show 尝试用系统查看器打开图像, 失败时静默忽略
func show(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
