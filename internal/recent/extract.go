package recent

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ErrUnparsableCommand marks a launch command with no usable program token
var ErrUnparsableCommand = errors.New("unparsable launch command")

// ExtractProgram returns the program token used to group files: the
// executable of the launch command, without arguments. Registry commands are
// usually quoted as a whole ('gedit %u'), so the command is split with shell
// rules first and the first word is then split on whitespace.
func ExtractProgram(command string) (string, error) {
	words, err := shell.Fields(command, os.Getenv)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnparsableCommand, command, err)
	}

	for len(words) > 0 {
		fields := strings.Fields(words[0])
		if len(fields) == 0 {
			words = words[1:]
			continue
		}
		token := fields[0]
		if isInvocationMarker(token) {
			// the marker may share a quoted word with the real command
			words = append(fields[1:], words[1:]...)
			continue
		}
		if !usableToken(token) {
			break
		}
		return token, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnparsableCommand, command)
}

// isInvocationMarker reports words that precede the executable itself
func isInvocationMarker(word string) bool {
	if word == "env" || word == "/usr/bin/env" {
		return true
	}
	name, _, ok := strings.Cut(word, "=")
	return ok && name != "" && !strings.ContainsAny(name, "/%")
}

// usableToken rejects field codes such as %u and other tokens that cannot
// name an executable.
func usableToken(token string) bool {
	if strings.HasPrefix(token, "%") {
		return false
	}
	return strings.ContainsFunc(token, func(r rune) bool {
		return r == '/' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}
