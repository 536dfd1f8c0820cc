package main

import (
	"fmt"
	"strconv"
	"strings"
)

// splitArgPair splits a single --arg value of the form key=value.
func splitArgPair(pair string) (string, string, error) {
	k, v, ok := strings.Cut(pair, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid --arg %q: expected key=value", pair)
	}
	return k, v, nil
}

// parseArgValue turns a command-line string into the most specific value
// fmt can format: int, then float, then string.
func parseArgValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
