package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptSelect reads a 1-based option number from r, re-asking until a
// number within [1, max] is entered.
func promptSelect(r io.Reader, label string, max int) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Printf("%s (enter the option number): ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("input closed before a selection was made")
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > max {
			fmt.Printf("Please enter a number between 1 and %d.\n", max)
			continue
		}
		return n, nil
	}
}
