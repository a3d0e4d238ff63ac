package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemlist/internal/config"
	"github.com/Makepad-fr/itemlist/internal/model"
	"github.com/Makepad-fr/itemlist/internal/store"
	"github.com/Makepad-fr/itemlist/internal/store/memstore"
	"github.com/Makepad-fr/itemlist/internal/store/seed"
	"github.com/Makepad-fr/itemlist/internal/tui"
	"github.com/Makepad-fr/itemlist/internal/ui"
)

// Options carries what the subcommands need from main.
type Options struct {
	Config *config.Config
	Log    *zap.SugaredLogger
	In     io.Reader // script source for `run` without a file
}

// runTUI is swapped in tests; the real one takes over the terminal.
var runTUI = func(s store.Items, log *zap.SugaredLogger) error { return tui.Run(s, log) }

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.Config == nil {
		opt.Config = &config.Config{Theme: "classic", LogLevel: "info"}
	}
	if opt.Log == nil {
		opt.Log = zap.NewNop().Sugar()
	}
	opt.Log = opt.Log.With("session", uuid.NewString())
	applyTheme(opt.Config)

	cmd, a := args[0], args[1:]
	opt.Log.Debugw("command", "name", cmd, "args", a)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail("usage: itemlist ui")
			return 2
		}
		return doUI(opt)

	case "ls":
		return doList(opt, strings.Join(a, " "), len(a) > 0)

	case "run":
		if len(a) > 1 {
			ui.Fail("usage: itemlist run [file]")
			return 2
		}
		path := ""
		if len(a) == 1 {
			path = a[0]
		}
		return doRun(opt, path)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `itemlist - an in-memory item list

Usage:
  itemlist [flags] <subcommand> [args]

Subcommands:
  ui                 Open the interactive list (n new, enter edit, ctrl+f filter)
  ls [substring]     Print the items, only titles containing substring if given
  run [file]         Apply commands from file (or stdin) to one session store
  help               Show this help

Script commands (one per line, # comments):
  add <title...>            Create an item under the next id
  insert <id> <title...>    Insert an item with an explicit id
  edit <id> <title...>      Replace the title of an item
  show <id>                 Look an item up
  rm <id>                   Delete an item
  filter [substring]        Print the matching items
  ls                        Print every item

Flags:
  -theme classic|neon|mono   -no-color   -seed <file.json|file.yaml>
  -log-level <level>         -log-file <path>   -version

Examples:
  itemlist ls Second
  printf 'add Fourth Item\nedit 2 Second Item Updated\nfilter Second\n' | itemlist run
`)
}

func applyTheme(cfg *config.Config) {
	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}
	if cfg.NoColor || cfg.Theme == "mono" {
		tui.SetMono()
	}
}

// openStore builds the session store from the configured seed.
func openStore(opt Options) (*memstore.Store, error) {
	items, err := seed.Load(opt.Config.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	s, err := memstore.New(opt.Log, items...)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	opt.Log.Debugw("store opened", "items", s.Len(), "seed", opt.Config.SeedFile)
	return s, nil
}

// -------------- subcommand impls ----------------

func doUI(opt Options) int {
	s, err := openStore(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if err := runTUI(s, opt.Log); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options, sub string, filtered bool) int {
	s, err := openStore(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	items := s.All()
	box := ui.Current().BoxUnchecked
	if filtered {
		items = s.Filter(sub)
		box = ui.Current().BoxChecked
	}

	header := fmt.Sprintf("%s  %s %s",
		ui.C(ui.Current().Title, "Item List"),
		ui.C(ui.Current().Accent, "Filter"), box,
	)
	if filtered {
		header += " " + strconv.Quote(sub)
	}

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(ui.Current().Muted, ui.MatchBar(len(items), s.Len(), 28)))
	lines = append(lines, "")
	lines = append(lines, ui.ItemLines(items)...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: edit interactively with `itemlist ui`"))
	ui.Panel(ui.Out, lines)
	return 0
}

func doRun(opt Options, path string) int {
	in := opt.In
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail("open: " + err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		ui.Fail("run: no input")
		return 2
	}

	s, err := openStore(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	failed, err := Exec(in, s, opt.Log)
	if err != nil {
		ui.Fail("read: " + err.Error())
		return 1
	}
	if failed > 0 {
		ui.Fail(fmt.Sprintf("%d command(s) failed", failed))
		return 1
	}
	return 0
}

// Exec applies one command per line of r to s and reports each result.
// A failing line is reported and skipped; the count of failures is returned.
func Exec(r io.Reader, s store.Items, log *zap.SugaredLogger) (int, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	failed := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execLine(line, s); err != nil {
			failed++
			log.Warnw("script line failed", "line", n, "cmd", line, "error", err)
			ui.Fail(fmt.Sprintf("line %d: %v", n, err))
		}
	}
	return failed, sc.Err()
}

func execLine(line string, s store.Items) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		it, err := s.Create(rest)
		if err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("added %v", it))

	case "insert":
		id, title, err := idAndRest(rest)
		if err != nil {
			return err
		}
		if err := s.Insert(model.Item{ID: id, Title: title}); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("inserted %d", id))

	case "edit":
		id, title, err := idAndRest(rest)
		if err != nil {
			return err
		}
		if err := s.UpdateTitle(id, title); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("updated %d", id))

	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if _, err := s.FindByID(id); err != nil {
			return err
		}
		printLines(ui.ItemLines([]model.Item{s.Specific()}))

	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err := s.Delete(model.Item{ID: id}); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("removed %d", id))

	case "filter":
		printLines(ui.ItemLines(s.Filter(rest)))

	case "ls":
		printLines(ui.ItemLines(s.All()))

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printLines(lines []string) {
	for _, ln := range lines {
		fmt.Fprintln(ui.Out, ln)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return id, nil
}

func idAndRest(s string) (int, string, error) {
	idStr, rest, _ := strings.Cut(s, " ")
	id, err := parseID(idStr)
	if err != nil {
		return 0, "", err
	}
	return id, strings.TrimSpace(rest), nil
}
