package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ValidateLanguage checks that a target language looks usable: an ISO
// code or a language name, at least two characters.
func ValidateLanguage(language string) error {
	if len(strings.TrimSpace(language)) < 2 {
		return fmt.Errorf("please enter a valid language code or name")
	}
	return nil
}

// PromptForLanguage asks on the terminal for a target language until a
// valid one is entered.
func PromptForLanguage(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter the target language (ISO alpha-2 code or language name): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("no language entered")
		}
		language := strings.TrimSpace(scanner.Text())
		if err := ValidateLanguage(language); err != nil {
			fmt.Fprintln(out, "Please enter a valid language code or name.")
			continue
		}
		return language, nil
	}
}

// PromptForInputDir asks on the terminal for an input directory until
// an existing directory is entered.
func PromptForInputDir(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter the input directory to translate: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("no input directory entered")
		}
		inputDir := strings.TrimSpace(scanner.Text())
		if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
			fmt.Fprintln(out, "Please enter a valid directory path.")
			continue
		}
		return inputDir, nil
	}
}
