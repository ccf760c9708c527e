// Package output renders check results for the console.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/eden/pkg/check"
)

const (
	passIcon = "🌱"
	failIcon = "🥀"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off color codes for the rest of the process.
func DisableColor() {
	green, red, yellow, dim, reset = "", "", "", "", ""
}

// PrintResult writes one line for a check result.
func PrintResult(w io.Writer, r check.Result) {
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s %s: %s - %s\n",
			passIcon, paint(dim, r.Type.String()), paint(green, r.Name), paint(dim, r.Message))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s: %s - %s\n",
		failIcon, paint(dim, r.Type.String()), paint(red, r.Name), paint(yellow, r.Message))
}

// PrintSummary writes every result in order and returns the pass/fail counts.
func PrintSummary(w io.Writer, results []check.Result) (passed, failed int) {
	for _, r := range results {
		PrintResult(w, r)
		if r.OK() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// PrintTally writes the closing line of a run.
func PrintTally(w io.Writer, passed, failed int) {
	if Failed(failed) {
		verb := "need"
		if failed == 1 {
			verb = "needs"
		}
		_, _ = fmt.Fprintf(w, "\n%s %d sprouted, %s %d %s water\n", passIcon, passed, failIcon, failed, verb)
		return
	}
	_, _ = fmt.Fprintf(w, "\n🌻 The garden is flourishing! All %d checks passed\n", passed)
}

// Failed reports whether a run with this many failures must exit non-zero.
func Failed(failed int) bool {
	return failed > 0
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + reset
}
