// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package terminal is a line-oriented front end for the converter. It
// implements converter.UI and converter.EventSource over a reader and a
// writer.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/pkg/types"
)

// queueSize bounds the commands read ahead while a handler is running.
const queueSize = 64

const helpText = `Commands:
  amount <value>   set the amount to convert
  from <code>      select the source currency
  to <code>        select the target currency
  convert          convert the amount
  swap             swap source and target currencies
  show             print the current selection
  list             list available currencies
  help             show this help
  quit             exit`

// Terminal holds the form state and the result region. Form fields are
// only touched from the goroutine running Run.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	catalog *currency.Catalog

	amount   string
	from     string
	to       string
	validity string

	// busy mirrors the disabled trigger; the reader goroutine checks it.
	busy atomic.Bool

	wmu     sync.Mutex
	success *color.Color
	failure *color.Color
	muted   *color.Color

	onSubmit func(context.Context)
	onSwap   func(context.Context)
	onAmount func(context.Context)
}

// New returns a terminal reading commands from in and rendering to out.
// When useColor is false all output is plain text.
func New(in io.Reader, out io.Writer, catalog *currency.Catalog, useColor bool) *Terminal {
	t := &Terminal{
		in:      in,
		out:     out,
		catalog: catalog,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{t.success, t.failure, t.muted} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// --- converter.UI ---

func (t *Terminal) Amount() string { return t.amount }

// SetAmount sets the amount field without firing the input event.
func (t *Terminal) SetAmount(v string) { t.amount = v }

func (t *Terminal) SetAmountValidity(message string) {
	t.validity = message
	if message != "" {
		t.println(t.failure, "amount: "+message)
	}
}

// AmountValidity returns the current constraint message.
func (t *Terminal) AmountValidity() string { return t.validity }

func (t *Terminal) FromCurrency() string { return t.from }
func (t *Terminal) SetFromCurrency(code string) { t.from = code }
func (t *Terminal) ToCurrency() string { return t.to }
func (t *Terminal) SetToCurrency(code string) { t.to = code }

func (t *Terminal) SetTriggerEnabled(enabled bool) { t.busy.Store(!enabled) }

// TriggerEnabled reports whether convert commands are accepted.
func (t *Terminal) TriggerEnabled() bool { return !t.busy.Load() }

func (t *Terminal) Render(state types.DisplayState) {
	switch state.Kind {
	case types.DisplayLoading:
		t.println(t.muted, "Converting...")
	case types.DisplaySuccess:
		for _, line := range state.Lines() {
			t.println(t.success, line)
		}
	case types.DisplayError:
		for _, line := range state.Lines() {
			t.println(t.failure, line)
		}
	}
}

// --- converter.EventSource ---

func (t *Terminal) OnSubmit(h func(context.Context)) { t.onSubmit = h }
func (t *Terminal) OnSwapClick(h func(context.Context)) { t.onSwap = h }
func (t *Terminal) OnAmountInput(h func(context.Context)) { t.onAmount = h }

// Run reads commands until quit, end of input or ctx is done. Commands run
// one at a time on the calling goroutine. A convert command read while a
// conversion is in progress is dropped.
func (t *Terminal) Run(ctx context.Context) error {
	t.println(t.muted, helpText)

	lines := make(chan string, queueSize)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(t.in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if isConvert(line) && t.busy.Load() {
				t.println(t.muted, "conversion in progress; convert ignored")
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading commands: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := t.dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

func isConvert(line string) bool {
	return strings.EqualFold(strings.Fields(line)[0], "convert")
}

// dispatch runs one command and reports whether the session should end.
func (t *Terminal) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "amount":
		t.amount = strings.Join(args, " ")
		fire(ctx, t.onAmount)
	case "from":
		t.selectCurrency(args, t.SetFromCurrency)
	case "to":
		t.selectCurrency(args, t.SetToCurrency)
	case "convert":
		fire(ctx, t.onSubmit)
	case "swap":
		fire(ctx, t.onSwap)
		t.printSelection()
	case "show":
		t.printSelection()
	case "list":
		for _, c := range t.catalog.All() {
			t.println(nil, fmt.Sprintf("%s  %s", c.Code, c.Name))
		}
	case "help":
		t.println(t.muted, helpText)
	case "quit", "exit":
		return true
	default:
		t.println(t.failure, fmt.Sprintf("unknown command %q; type help", cmd))
	}
	return false
}

// selectCurrency mimics a selector: only catalog codes are accepted and no
// argument clears the selection.
func (t *Terminal) selectCurrency(args []string, set func(string)) {
	if len(args) == 0 {
		set("")
		return
	}
	cur, ok := t.catalog.Lookup(args[0])
	if !ok {
		t.println(t.failure, fmt.Sprintf("unknown currency %q; type list", args[0]))
		return
	}
	set(cur.Code)
}

func (t *Terminal) printSelection() {
	t.println(t.muted, fmt.Sprintf("amount=%q from=%q to=%q", t.amount, t.from, t.to))
}

func (t *Terminal) println(c *color.Color, s string) {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	if c == nil {
		fmt.Fprintln(t.out, s)
		return
	}
	c.Fprintln(t.out, s)
}

func fire(ctx context.Context, h func(context.Context)) {
	if h != nil {
		h(ctx)
	}
}
