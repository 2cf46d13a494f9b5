package cwrap

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func boringTheme() Theme {
	return NewTheme("boring", Styles{})
}

func renderDump(t *testing.T, src string, width int) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(src),
		Writer: &out,
		Width:  width,
		Theme:  boringTheme(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func readSample(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}
