// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/invowk/argbind/internal/binding"
	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/pkg/argument"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// renderInvocation renders inv as a table: the argument slot first, then
// options by name.
func renderInvocation(inv *binding.Invocation) string {
	rows := [][]string{valueRow("arguments", inv.Arguments)}
	names := maps.Keys(inv.Options)
	slices.Sort(names)
	for _, name := range names {
		rows = append(rows, valueRow("--"+name, inv.Options[name]))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtitleStyle).
		Headers("SYMBOL", "VALUE", "TYPE", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return renderCommandStyle.Render(inv.Command) + "\n" + t.String() + "\n"
}

func valueRow(label string, v binding.Value) []string {
	source := "tokens"
	if v.FromDefault {
		source = "default"
	}
	if !v.Present {
		return []string{label, SubtitleStyle.Render("(none)"), "", ""}
	}
	return []string{label, formatValue(v.Value), typeLabel(v.Value), source}
}

func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}

func typeLabel(v any) string {
	if v == nil {
		return ""
	}
	return reflect.TypeOf(v).String()
}

// writeInvocationJSON writes inv as indented JSON.
func writeInvocationJSON(w io.Writer, inv *binding.Invocation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(inv)
}

// isBindingError reports whether err came from validators or converters.
func isBindingError(err error) bool {
	return errors.Is(err, binding.ErrValidationFailed) ||
		errors.Is(err, argument.ErrConversionFailed) ||
		errors.Is(err, binding.ErrUnknownOption)
}

// renderBindingError renders every binding message of err as a card.
func renderBindingError(command string, err error) string {
	var sb strings.Builder
	sb.WriteString(renderHeaderStyle.Render("✗ Invalid arguments!"))
	sb.WriteString("\n\n")
	if command != "" {
		sb.WriteString("Command " + renderCommandStyle.Render("'"+command+"'") + " rejected its tokens:\n\n")
	}
	for _, msg := range binding.Messages(err) {
		sb.WriteString(renderValueStyle.Render("  • " + msg))
		sb.WriteString("\n")
	}
	sb.WriteString(renderHintStyle.Render(fmt.Sprintf("Run 'argbind suggest %s' to list accepted values.", command)))
	sb.WriteString("\n")
	return sb.String()
}

// formatErrorForDisplay uses ActionableError.Format when possible.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// bindingFailure carries a binding error together with the command name for
// the error card.
type bindingFailure struct {
	command string
	err     error
}

func (f *bindingFailure) Error() string { return f.err.Error() }

func (f *bindingFailure) Unwrap() error { return f.err }

// handleError is the fang error handler: binding failures become cards,
// actionable errors print their suggestions (and, when verbose, the linked
// issue guide), everything else goes to fang's default rendering.
func (app *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var bf *bindingFailure
	if errors.As(err, &bf) {
		fmt.Fprint(w, renderBindingError(bf.command, bf.err))
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("✗ ")+ae.Format(app.verbose))
	if !app.verbose || ae.Issue == 0 {
		return
	}
	if guide := issue.Get(ae.Issue); guide != nil {
		if rendered, renderErr := guide.Render(app.glamourStyle()); renderErr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}
