package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name   string
		print  func(p *Printer)
		marker string
		text   string
	}{
		{"success", func(p *Printer) { p.Success("File a.ts created.") }, "✔", "File a.ts created."},
		{"error", func(p *Printer) { p.Error("cannot write a.ts") }, "✖", "cannot write a.ts"},
		{"info", func(p *Printer) { p.Info("Next steps:") }, "ℹ", "Next steps:"},
		{"step", func(p *Printer) { p.Step("import the module") }, "   ", "import the module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))

			out := buf.String()
			assert.Contains(t, out, tt.marker)
			assert.Contains(t, out, tt.text)
			assert.True(t, strings.HasSuffix(out, "\n"))
		})
	}
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Verbose("hidden")
	assert.Empty(t, buf.String())

	p.SetVerbose(true)
	assert.True(t, p.IsVerbose())
	p.Verbose("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDefaultPrinter(t *testing.T) {
	var buf bytes.Buffer
	prev := SetDefault(New(&buf))
	defer SetDefault(prev)

	Success("ok")
	Verbose("quiet")
	SetVerbose(true)
	Verbose("loud")

	out := buf.String()
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestPrinter_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Success("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, strings.Count(buf.String(), "line"))
}
