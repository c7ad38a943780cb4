package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// askYesNo prompts the user with a yes/no question and keeps asking until
// an intelligible answer arrives. EOF counts as no.
func askYesNo(question string, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "%s [y/n]\n", question)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes", "t", "true", "on", "1":
			return true
		case "n", "no", "f", "false", "off", "0":
			return false
		default:
			fmt.Fprintln(out, "Please respond with 'y' or 'n'.")
		}
	}
	return false
}
