package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/cwrap"
)

// gen-golden rewrites testdata/<name>.golden with the uncolored item dump of
// every testdata/<name>.txt sample.
func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	paths, err := filepath.Glob(filepath.Join(root, "*.txt"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no text samples found under %s", root)
	}
	boring := cwrap.NewTheme("boring", cwrap.Styles{})
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		var out bytes.Buffer
		err = cwrap.Render(cwrap.RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
			Theme:  boring,
		})
		if err != nil {
			fatalf("render %s: %v", path, err)
		}
		goldenPath := strings.TrimSuffix(path, ".txt") + ".golden"
		if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s (%s)\n", goldenPath, cwrap.Summarize(cwrap.Itemize(string(src))))
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
