package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// readLine prompts and returns the trimmed next line. ok is false when
// stdin is closed.
func readLine(sc *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// readInt keeps prompting until it gets an integer in [min, max].
func readInt(sc *bufio.Scanner, prompt string, min, max int) (int, bool) {
	for {
		raw, ok := readLine(sc, prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Supplied value is not an integer, please try again.")
			continue
		}
		if n < min || n > max {
			fmt.Println("Supplied value is out of range, please try again.")
			continue
		}
		return n, true
	}
}

// readPassword securely reads a password with masking.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after password input
	return strings.TrimSpace(string(bytePassword)), nil
}

// pickIndex shows a numbered list of names and returns the chosen index.
func pickIndex(sc *bufio.Scanner, names []string) (int, bool) {
	for i, n := range names {
		fmt.Printf("%d. %s\n", i+1, n)
	}
	choice, ok := readInt(sc, fmt.Sprintf("Please enter a choice between 1 and %d: ", len(names)), 1, len(names))
	if !ok {
		return 0, false
	}
	return choice - 1, true
}
