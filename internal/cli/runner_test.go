package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemlist/internal/config"
	"github.com/Makepad-fr/itemlist/internal/model"
	"github.com/Makepad-fr/itemlist/internal/store"
	"github.com/Makepad-fr/itemlist/internal/store/memstore"
	"github.com/Makepad-fr/itemlist/internal/ui"
)

// captureOutput points the ui writers at buffers for the test's duration.
func captureOutput(t *testing.T) (out, errb *bytes.Buffer) {
	t.Helper()
	out, errb = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := ui.Out, ui.Err
	ui.Out, ui.Err = out, errb
	t.Cleanup(func() { ui.Out, ui.Err = prevOut, prevErr })
	return out, errb
}

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Config: &config.Config{Theme: "mono", NoColor: true, LogLevel: "info"},
		Log:    zap.NewNop().Sugar(),
	}
}

func TestExec_EndToEndScenario(t *testing.T) {
	out, errb := captureOutput(t)
	s := memstore.NewDefault(nil)

	script := `
# seeded with items 1..3
insert 4 Fourth Item
edit 2 Second Item Updated
filter Second
rm 1
ls
`
	failed, err := Exec(strings.NewReader(script), s, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Empty(t, errb.String())

	assert.Equal(t, []model.Item{
		{ID: 2, Title: "Second Item Updated"},
		{ID: 3, Title: "Third Item"},
		{ID: 4, Title: "Fourth Item"},
	}, s.All())

	want := strings.Join([]string{
		"✔ inserted 4",
		"✔ updated 2",
		"     2 Item: Second Item Updated",
		"✔ removed 1",
		"     2 Item: Second Item Updated",
		"     3 Item: Third Item",
		"     4 Item: Fourth Item",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestExec_AddAndShow(t *testing.T) {
	out, _ := captureOutput(t)
	s := memstore.NewDefault(nil)

	failed, err := Exec(strings.NewReader("add Buy milk\nshow 4\nfilter\n"), s, nil)
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, out.String(), `✔ added (4,"Buy milk")`)
	assert.Contains(t, out.String(), "     4 Item: Buy milk\n")
	assert.Equal(t, model.Item{ID: 4, Title: "Buy milk"}, s.Specific())
	assert.Equal(t, 1+1+4, strings.Count(out.String(), "\n"), "empty filter prints every item")
}

func TestExec_FailingLinesAreReportedAndSkipped(t *testing.T) {
	_, errb := captureOutput(t)
	s := memstore.NewDefault(nil)
	before := s.All()

	script := "edit 99 ghost\nrm abc\nbogus\nadd\ninsert 2 dup\nshow 7\nedit 1\n"
	failed, err := Exec(strings.NewReader(script), s, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 7, failed)
	assert.Equal(t, before, s.All())

	msg := errb.String()
	assert.Contains(t, msg, "line 1: update 99: item not found")
	assert.Contains(t, msg, `line 2: not a number: "abc"`)
	assert.Contains(t, msg, `line 3: unknown command "bogus"`)
	assert.Contains(t, msg, "line 4: insert 4: invalid input")
	assert.Contains(t, msg, "line 5: insert 2: duplicate item id")
	assert.Contains(t, msg, "line 6: find 7: item not found")
	assert.Contains(t, msg, "line 7: update 1: invalid input")
}

func TestRun_ScriptFromStdinAndFile(t *testing.T) {
	out, _ := captureOutput(t)
	opt := testOptions(t)
	opt.In = strings.NewReader("add Fourth Item\nls\n")
	assert.Equal(t, 0, Run([]string{"run"}, opt))
	assert.Contains(t, out.String(), "     4 Item: Fourth Item")

	p := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(p, []byte("rm 42\n"), 0o644))
	assert.Equal(t, 1, Run([]string{"run", p}, testOptions(t)))

	assert.Equal(t, 1, Run([]string{"run", filepath.Join(t.TempDir(), "missing")}, testOptions(t)))
	assert.Equal(t, 2, Run([]string{"run", "a", "b"}, testOptions(t)))
}

func TestRun_ListAndFilter(t *testing.T) {
	out, _ := captureOutput(t)

	assert.Equal(t, 0, Run([]string{"ls"}, testOptions(t)))
	assert.Contains(t, out.String(), "Item: First Item")
	assert.Contains(t, out.String(), "3/3")

	out.Reset()
	assert.Equal(t, 0, Run([]string{"ls", "Second"}, testOptions(t)))
	assert.Contains(t, out.String(), `"Second"`)
	assert.Contains(t, out.String(), "Item: Second Item")
	assert.NotContains(t, out.String(), "Item: First Item")
	assert.Contains(t, out.String(), "1/3")
}

func TestRun_SeedFile(t *testing.T) {
	out, errb := captureOutput(t)
	p := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(p, []byte("- id: 100\n  title: Groceries\n"), 0o644))

	opt := testOptions(t)
	opt.Config.SeedFile = p
	assert.Equal(t, 0, Run([]string{"ls"}, opt))
	assert.Contains(t, out.String(), "   100 Item: Groceries")

	bad := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id":1,"title":""}]`), 0o644))
	opt.Config.SeedFile = bad
	assert.Equal(t, 1, Run([]string{"ls"}, opt))
	assert.Contains(t, errb.String(), "seed")
}

func TestRun_UI(t *testing.T) {
	captureOutput(t)
	prev := runTUI
	t.Cleanup(func() { runTUI = prev })

	var got int
	runTUI = func(s store.Items, _ *zap.SugaredLogger) error {
		got = s.Len()
		return nil
	}
	assert.Equal(t, 0, Run([]string{"ui"}, testOptions(t)))
	assert.Equal(t, 3, got)

	runTUI = func(store.Items, *zap.SugaredLogger) error { return errors.New("no tty") }
	assert.Equal(t, 1, Run([]string{"ui"}, testOptions(t)))
	assert.Equal(t, 2, Run([]string{"ui", "extra"}, testOptions(t)))
}

func TestRun_UsageAndHelp(t *testing.T) {
	out, errb := captureOutput(t)

	assert.Equal(t, 2, Run(nil, testOptions(t)))
	assert.Equal(t, 0, Run([]string{"help"}, testOptions(t)))
	assert.Contains(t, out.String(), "Subcommands:")

	assert.Equal(t, 2, Run([]string{"frobnicate"}, Options{}))
	assert.Contains(t, errb.String(), "unknown subcommand: frobnicate")
}
