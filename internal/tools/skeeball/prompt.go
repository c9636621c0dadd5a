// Package skeeball runs the Skee-Ball simulator from the console: it reads a
// play count, plays the session and prints the report.
package skeeball

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	simulator "github.com/louisbranch/skeeball/internal/core/skeeball"
)

// Prompt keys double as the American English text.
const (
	MessagePlaysPrompt  = "Enter the number of plays (1-10): "
	MessageInvalidPlays = "Invalid input. Please enter a number between 1 and 10."
)

// ErrNoInput indicates input ended before a valid play count was entered.
var ErrNoInput = errors.New("input closed before a valid play count was entered")

// ReadPlayCount prompts on out until a whitespace-delimited token on in
// parses as an integer in [simulator.MinPlays, simulator.MaxPlays].
//
// Out-of-range and non-numeric tokens print the invalid message and prompt
// again, with no retry limit. Zero is accepted despite the "1-10" prompt.
func ReadPlayCount(in io.Reader, out io.Writer, printer *message.Printer) (int, error) {
	if printer == nil {
		printer = message.NewPrinter(language.AmericanEnglish)
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for {
		if _, err := io.WriteString(out, printer.Sprintf(MessagePlaysPrompt)); err != nil {
			return 0, fmt.Errorf("write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read play count: %w", err)
			}
			return 0, ErrNoInput
		}

		plays, err := strconv.Atoi(scanner.Text())
		if err == nil && simulator.ValidPlayCount(plays) {
			return plays, nil
		}
		if _, err := fmt.Fprintln(out, printer.Sprintf(MessageInvalidPlays)); err != nil {
			return 0, fmt.Errorf("write invalid input notice: %w", err)
		}
	}
}
