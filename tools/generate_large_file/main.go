// Large Expression File Generator
//
// This tool generates a single large expression for performance testing and
// profiling of the tokenizer, parser and line map. Operands are separated by
// mixed whitespace and every line terminator style (LF, CR LF and bare CR).
//
// Usage:
//
//	go run main.go > large.why
//	go run main.go 20000000 > large.why  # Specify target size in bytes
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
	termsPerLine      = 12
)

var (
	operators   = []string{"+", "-", "*", "/"}
	separators  = []string{" ", " ", " ", "\t", "  "}
	terminators = []string{"\n", "\n", "\n", "\r\n", "\r"}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer func() {
		if err := w.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()

	bytesWritten, _ := w.WriteString(operand())
	terms := 1

	for bytesWritten < targetSize {
		var sep string
		if terms%termsPerLine == 0 {
			sep = terminators[rand.Intn(len(terminators))]
		} else {
			sep = separators[rand.Intn(len(separators))]
		}

		// A space after the operator keeps '-' from gluing to the operand as
		// a sign.
		chunk := sep + operators[rand.Intn(len(operators))] + " " + operand()
		n, _ := w.WriteString(chunk)
		bytesWritten += n
		terms++
	}

	_, _ = w.WriteString("\n")
	fmt.Fprintf(os.Stderr, "Generated %d terms (%d bytes)\n", terms, bytesWritten+1)
}

// operand returns a non-zero integer literal, occasionally negative, so that
// the result can also be evaluated.
func operand() string {
	n := rand.Int63n(1_000_000) + 1
	if rand.Intn(5) == 0 {
		n = -n
	}
	return strconv.FormatInt(n, 10)
}
