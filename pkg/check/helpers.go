package check

import "fmt"

// Pass returns a passing result.
func Pass(t Type, name, message string) Result {
	return Result{Type: t, Name: name, Passed: true, Message: message}
}

// Fail returns a failing result.
func Fail(t Type, name, message string) Result {
	return Result{Type: t, Name: name, Passed: false, Message: message}
}

// Passf returns a passing result with a formatted message.
func Passf(t Type, name, format string, args ...any) Result {
	return Pass(t, name, fmt.Sprintf(format, args...))
}

// Failf returns a failing result with a formatted message.
func Failf(t Type, name, format string, args ...any) Result {
	return Fail(t, name, fmt.Sprintf(format, args...))
}

// Count splits results into passed and failed totals.
func Count(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.OK() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
