// Package prompt implements the numbered pick-one menu used by the CLI.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrNoItems is returned when there is nothing to choose from.
var ErrNoItems = errors.New("nothing to select")

const maxAttempts = 5

var (
	promptColor = color.New(color.FgYellow, color.Bold)
	cursorColor = color.New(color.FgCyan)
)

// Select lists items numbered from 1 and reads a choice from in. Empty input
// picks the first item. Invalid input re-prompts a few times before failing.
// The returned index is 0-based.
func Select(in io.Reader, out io.Writer, label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}

	promptColor.Fprintln(out, label)
	for i, item := range items {
		marker := " "
		if i == 0 {
			marker = cursorColor.Sprint(">")
		}
		fmt.Fprintf(out, "%s %2d) %s\n", marker, i+1, item)
	}

	reader := bufio.NewReader(in)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(out, "Choice [1-%d, default 1]: ", len(items))
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, fmt.Errorf("selection aborted: %w", err)
			}
			return 0, fmt.Errorf("read selection: %w", err)
		}
		if line == "" {
			return 0, nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(items))
		if err == io.EOF {
			return 0, fmt.Errorf("selection aborted: %w", err)
		}
	}
	return 0, fmt.Errorf("no valid selection after %d attempts", maxAttempts)
}
