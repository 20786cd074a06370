package util

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated values interactively. Each Ask method keeps
// re-prompting until the input parses and passes its bounds, mirroring
// a librarian filling in a record field by field.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps an input/output pair. Pass os.Stdin/os.Stdout in
// commands; tests pass a strings.Reader and a buffer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// AskString prompts until a non-empty line is entered.
func (p *Prompter) AskString(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Please enter a value.")
	}
}

// AskInt prompts until a whole number within [min, max] is entered.
func (p *Prompter) AskInt(label string, min, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Value must be between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// AskFloat prompts until a decimal within [min, max] is entered.
func (p *Prompter) AskFloat(label string, min, max float64) (float64, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(line, 64)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a decimal number like 4.6.")
			continue
		}
		if f < min || f > max {
			fmt.Fprintf(p.out, "Value must be between %.1f and %.1f.\n", min, max)
			continue
		}
		return f, nil
	}
}

// AskYesNo prompts until yes or no (or y/n) is entered.
func (p *Prompter) AskYesNo(label string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (yes/no): ", label)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please type 'yes' or 'no'.")
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
