package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword, so tests never
// touch a real terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads one line from reader,
// trimming surrounding whitespace. A partial line at EOF is returned
// rather than discarded.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetInt prompts like GetSimpleText and parses the answer as int64.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// GetPassword prompts and reads a password from the terminal without
// echo. A newline is printed after the read to keep the prompt tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
