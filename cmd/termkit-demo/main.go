// Command termkit-demo renders a nested panel layout and, with -keys, echoes
// the name of every key pressed until q or Ctrl+C.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hnimtadd/termkit"
	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/color"
	"github.com/hnimtadd/termkit/terminal/component"
	"github.com/hnimtadd/termkit/terminal/keypress"
	"github.com/hnimtadd/termkit/terminal/panel"
	"github.com/hnimtadd/termkit/terminal/width"
	"github.com/hnimtadd/termkit/terminal/writer"
	"golang.org/x/term"
)

func main() {
	policy := flag.String("policy", "auto", "emoji width policy: standard, narrow or auto")
	accent := flag.String("accent", "cyan", "accent color name")
	keys := flag.Bool("keys", false, "echo key names after rendering")
	progress := flag.Bool("progress", false, "animate a progress bar after rendering")
	menu := flag.Bool("menu", false, "ask for a layout corner style before rendering")
	debug := flag.Bool("debug", false, "log to stderr at debug level")
	flag.Parse()

	cfg := config{policy: *policy, accent: *accent, keys: *keys, progress: *progress, menu: *menu, debug: *debug}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "termkit-demo:", err)
		os.Exit(1)
	}
}

type config struct {
	policy, accent              string
	keys, progress, menu, debug bool
}

func run(cfg config) error {
	log := logger.Nop
	if cfg.debug {
		log = logger.New(logger.Options{Buffer: os.Stderr, Level: logger.DebugLevel})
	}
	p, err := width.ParsePolicy(cfg.policy)
	if err != nil {
		return err
	}
	width.SetDefault(p)
	accent, err := color.ParseName(cfg.accent)
	if err != nil {
		return err
	}

	out := writer.NewStdout()
	t := termkit.New(termkit.Options{Writer: out, Logger: log})
	t.SetTitle("termkit-demo")

	corner := panel.CornerRounded
	if cfg.menu {
		in := component.NewInput(component.InputOptions{Writer: out, Logger: log})
		picked, ok, err := component.NewChoice(in, component.ChoiceOptions{Optional: true}).
			Prompt("Corner style", []string{panel.CornerRounded.String(), panel.CornerSharp.String()})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if corner, err = panel.ParseCorner(picked); err != nil {
			return err
		}
	}

	cols := 80
	if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
		cols = w
	}
	root, err := layout(cols, accent, corner, log)
	if err != nil {
		return err
	}

	banner := component.NewBanner(component.BannerOptions{
		Title:      "termkit",
		Lines:      []string{fmt.Sprintf("width policy: %s", width.Default().Policy())},
		TitleStyle: []int{accent.FG()},
	})
	if _, err := banner.WriteTo(out); err != nil {
		return err
	}
	t.Render(root)
	if err := t.Err(); err != nil {
		return err
	}
	if cfg.progress {
		if err := animate(t, accent); err != nil {
			return err
		}
	}
	if !cfg.keys {
		return nil
	}
	return echoKeys(t, log)
}

func layout(cols int, accent color.Name, corner panel.Corner, log logger.Logger) (*panel.Panel, error) {
	opts := panel.Options{Logger: log}

	table := component.NewTable(component.TableOptions{
		Padding:     1,
		HeaderStyle: []int{accent.FG()},
		Logger:      log,
	}).
		Headers("key", "sequence").
		AddRow("Up", `ESC [ A`).
		AddRow("Ctrl+Up", `ESC [ 1 ; 5 A`).
		AddRow("F1", `ESC O P`)
	tableBlock := panel.NewBlockWithOptions(opts)
	if _, err := table.WriteTo(tableBlock); err != nil {
		return nil, err
	}

	notes, err := panel.NewBlockWithOptions(opts).
		Content("Blocks wrap words at a fixed width.\tTabs expand to stops, and wide glyphs 日本 🚀 keep their columns.").
		Width(min(40, max(cols/2, 12))).
		Border(true).
		Overflow(panel.OverflowWordWrap)
	if err != nil {
		return nil, err
	}

	left, err := panel.NewWithOptions(opts).Layout(panel.LayoutVertical)
	if err != nil {
		return nil, err
	}
	left.Dividers(true, "").MustAddBlock(
		panel.NewBlockWithOptions(opts).Content("Known keys"),
		tableBlock,
	)

	root, err := panel.NewWithOptions(opts).Layout(panel.LayoutHorizontal)
	if err != nil {
		return nil, err
	}
	if _, err := root.Corners(corner); err != nil {
		return nil, err
	}
	root.Border(true).Dividers(true, "").MustAddBlock(left, notes)
	return root, nil
}

func animate(t *termkit.Terminal, accent color.Name) error {
	const steps = 30
	spinner := component.NewSpinner(component.SpinnerDots)
	bar := component.NewProgress(component.ProgressOptions{
		Width:      30,
		LabelWidth: 12,
		BarStyle:   []int{accent.FG()},
		LabelStyle: []int{ansi.TextBold},
	})
	phases := []string{"Measuring", "Wrapping", "Composing"}

	t.HideCursor()
	defer t.ShowCursor()
	for i := 0; i <= steps; i++ {
		phase := phases[min(i*len(phases)/(steps+1), len(phases)-1)]
		if err := bar.RenderInPlace(t, i, steps, spinner.Next()+" "+phase); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
	}
	return t.Newline(1).Bell().Err()
}

func echoKeys(t *termkit.Terminal, log logger.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("-keys needs a terminal on stdin")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	t.Write("press keys, q or Ctrl+C to quit\r\n")
	l := keypress.NewListener(keypress.Options{Reader: os.Stdin, Logger: log})
	defer l.Close()
	for ev, err := range l.Events() {
		if err != nil {
			return err
		}
		label := ev.Name()
		if alt, ok := ev.Alt(); ok {
			label = alt
		}
		t.WriteStyled(label, color.BrightYellow.FG()).Write("\r\n")
		if ev.Key == keypress.KeyCtrlC || ev.Key == "q" {
			break
		}
	}
	return t.Err()
}
