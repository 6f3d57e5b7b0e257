// Package prompt implements the interactive yes/no confirmation used by
// scriptbase commands.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Default selects what an empty answer means.
type Default int

const (
	// NoDefault forces the user to give an explicit answer.
	NoDefault Default = iota
	// DefaultYes treats an empty answer as yes.
	DefaultYes
	// DefaultNo treats an empty answer as no.
	DefaultNo
)

var answers = map[string]bool{
	"yes": true,
	"y":   true,
	"ye":  true,
	"no":  false,
	"n":   false,
}

// Confirm asks question on stdout and reads the answer from stdin.
// It blocks until a valid answer is given; there is no timeout.
func Confirm(question string, def Default) (bool, error) {
	return Ask(os.Stdin, os.Stdout, question, def)
}

// Ask asks question on w and reads answers from r until one is valid.
// Answers are matched case-insensitively: yes/y/ye and no/n. An empty
// answer resolves to def unless def is NoDefault, in which case the
// question is asked again. Any other input prints a usage hint and
// re-prompts. An exhausted reader yields an error.
func Ask(r io.Reader, w io.Writer, question string, def Default) (bool, error) {
	var suffix string
	switch def {
	case DefaultYes:
		suffix = " [Y/n] "
	case DefaultNo:
		suffix = " [y/N] "
	default:
		suffix = " [y/n] "
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, question+suffix)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			return false, fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))

		if answer == "" {
			switch def {
			case DefaultYes:
				return true, nil
			case DefaultNo:
				return false, nil
			default:
				continue
			}
		}
		if v, ok := answers[answer]; ok {
			return v, nil
		}
		fmt.Fprintln(w, "Please respond with 'yes' or 'no' (or 'y' or 'n').")
	}
}
