package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter wraps interactive stdin/stdout conversation for console commands.
// Commands read through a single prompter so tests can feed scripted input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the question and returns the trimmed answer, or the fallback
// when the answer is empty.
func (p *prompter) ask(question, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, fallback)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}

	return line
}

// confirm asks a yes/no question; only an explicit "y"/"yes"/"s"/"si"
// answer counts as yes.
func (p *prompter) confirm(question string) bool {
	answer := strings.ToLower(p.ask(question+" (y/N)", "n"))

	switch answer {
	case "y", "yes", "s", "si", "sí":
		return true
	default:
		return false
	}
}

// choose prints the numbered options and returns the index of the picked
// one. Invalid input re-prompts up to three times, then the first option
// wins.
func (p *prompter) choose(question string, options []string) int {
	fmt.Fprintln(p.out, question)

	for i, option := range options {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, option)
	}

	for attempt := 0; attempt < 3; attempt++ {
		answer := p.ask("Selección", "1")

		idx, err := strconv.Atoi(answer)
		if err == nil && idx >= 1 && idx <= len(options) {
			return idx - 1
		}

		fmt.Fprintln(p.out, "Opción inválida.")
	}

	return 0
}
