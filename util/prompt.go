package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input is where prompts read answers from.
var Input io.Reader = os.Stdin

func readAnswer() string {
	response, err := bufio.NewReader(Input).ReadString('\n')
	if err != nil && err != io.EOF {
		panic(err)
	}
	return strings.TrimSpace(response)
}

func PromptString(prompt string, def string) string {
	fmt.Printf("%s (%s): ", prompt, def)

	response := readAnswer()
	if response == "" {
		return def
	}
	return response
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Printf("%s (Y/n): ", prompt)
	} else {
		fmt.Printf("%s (y/N): ", prompt)
	}

	response := readAnswer()
	if response == "" {
		return def
	}
	return strings.ToLower(response) == "y"
}
