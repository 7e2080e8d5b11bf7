package style

import "fmt"

// Pass prints a passing status line with a checkmark
func Pass(format string, a ...interface{}) {
	fmt.Printf("  ✓ "+format+"\n", a...)
}

// Fail prints a failing status line with a cross
func Fail(format string, a ...interface{}) {
	fmt.Printf("  ✗ "+format+"\n", a...)
}

// Hint prints a remediation hint, indented under its check
func Hint(format string, a ...interface{}) {
	fmt.Printf("    "+format+"\n", a...)
}

// Header prints a header message without a prefix
func Header(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}
