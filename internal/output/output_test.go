package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stowbar/stowbar/internal/model"
	"gopkg.in/yaml.v3"
)

// capture runs fn with stdout redirected and returns what it wrote.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	items := []model.Item{
		{WindowID: 12, OwnerPID: 42, ResolvedName: "Dropbox", Frame: model.Rect{X: 800, Y: 0, W: 30, H: 24}},
	}
	out := capture(t, func() error { return PrintYAML(items) })

	var decoded []model.Item
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 1 || decoded[0].WindowID != 12 {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestPrintJSON_SingleLine(t *testing.T) {
	out := capture(t, func() error {
		return PrintJSON(map[string]int{"visible": 3, "hidden": 2})
	})
	if bytes.Count([]byte(out), []byte("\n")) != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", out)
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	orig := OutputFormat
	defer func() { OutputFormat = orig }()

	OutputFormat = Format("xml")
	if err := Print(struct{}{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
