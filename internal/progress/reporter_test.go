package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Building site"}
	r.Start(2)
	r.Update(1, "index.md")
	r.Update(2, "guide.md")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Building site: 2 pages", "[1/2] index.md", "[2/2] guide.md", "Building site: done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
