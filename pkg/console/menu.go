package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"GrayStego/pkg/filehandler"
	"GrayStego/pkg/models"
)

// Choice is a menu selection
type Choice int

const (
	ChoiceHide Choice = iota + 1
	ChoiceExtract
	ChoiceExit
)

// Operations is what the menu dispatches to
type Operations interface {
	Hide(coverPath, secretPath, outPath string) (*models.EmbedResult, error)
	Extract(stegoPath, outPath string) (*models.ExtractResult, error)
}

// ParseChoice maps a line of input to a menu choice
func ParseChoice(input string) (Choice, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return ChoiceHide, nil
	case "2":
		return ChoiceExtract, nil
	case "3":
		return ChoiceExit, nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidChoice, input)
	}
}

// Menu is the interactive read-validate-dispatch loop
type Menu struct {
	ops     Operations
	printer *Printer
	scanner *bufio.Scanner
}

// NewMenu creates a menu reading answers from in
func NewMenu(ops Operations, in io.Reader, printer *Printer) *Menu {
	return &Menu{
		ops:     ops,
		printer: printer,
		scanner: bufio.NewScanner(in),
	}
}

// Run shows the menu until the user picks Exit or the input ends.
// Errors from the operations are printed and never end the loop.
func (m *Menu) Run() {
	for {
		m.printMenu()

		answer, ok := m.prompt("Enter your choice: ")
		if !ok {
			return
		}

		choice, err := ParseChoice(answer)
		if err != nil {
			m.printer.Plain("Invalid choice. Please try again.\n")
			continue
		}

		switch choice {
		case ChoiceHide:
			if !m.hide() {
				return
			}
		case ChoiceExtract:
			if !m.extract() {
				return
			}
		case ChoiceExit:
			m.printer.Plain("Exiting...\n")
			return
		}
	}
}

func (m *Menu) printMenu() {
	m.printer.Plain("\nOptions:\n")
	m.printer.Plain("1. Hide an Image\n")
	m.printer.Plain("2. Extract an Image\n")
	m.printer.Plain("3. Exit\n")
}

// prompt returns false once the input is exhausted
func (m *Menu) prompt(question string) (string, bool) {
	m.printer.Plain("%s", question)
	if !m.scanner.Scan() {
		return "", false
	}
	return cleanPath(m.scanner.Text()), true
}

// cleanPath strips surrounding whitespace and the quotes some terminals
// add when a file is dropped onto them
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

func (m *Menu) hide() bool {
	coverPath, ok := m.prompt("Enter the path of the cover image: ")
	if !ok {
		return false
	}
	secretPath, ok := m.prompt("Enter the path of the secret image: ")
	if !ok {
		return false
	}
	outPath, ok := m.prompt("Enter the output path for the stego image: ")
	if !ok {
		return false
	}

	if !filehandler.Exists(coverPath) || !filehandler.Exists(secretPath) {
		m.printer.Error("One or both of the image paths are invalid.")
		return true
	}

	result, err := m.ops.Hide(coverPath, secretPath, outPath)
	if err != nil {
		m.reportError(err, "One or both images could not be loaded. Check the paths.")
		return true
	}

	if result.Resized {
		m.printer.Info("Resizing images to match dimensions...")
	}
	m.printFindings(result.Findings)
	m.printer.Verbose("Cover %dx%d (%s), secret %dx%d (%s), resampler %s",
		result.Width, result.Height, result.CoverFormat,
		result.SecretWidth, result.SecretHeight, result.SecretFormat, result.Resampler)
	m.printer.Verbose("Stego vs cover: MSE %.3f, PSNR %.2f dB, max difference %d",
		result.Quality.MSE, result.Quality.PSNR, result.Quality.MaxAbsDiff)
	m.printer.Verbose("Stego image written as %s", result.OutputFormat)
	m.printer.Success("Stego image saved as %s", result.OutputPath)
	return true
}

func (m *Menu) extract() bool {
	stegoPath, ok := m.prompt("Enter the path of the stego image: ")
	if !ok {
		return false
	}
	outPath, ok := m.prompt("Enter the output path for the extracted secret image: ")
	if !ok {
		return false
	}

	if !filehandler.Exists(stegoPath) {
		m.printer.Error("The stego image path is invalid.")
		return true
	}

	result, err := m.ops.Extract(stegoPath, outPath)
	if err != nil {
		m.reportError(err, "The stego image could not be loaded. Check the path.")
		return true
	}

	m.printFindings(result.Findings)
	m.printer.Verbose("Read %s stego image, wrote %s", result.StegoFormat, result.OutputFormat)
	m.printer.Verbose("Recovered %dx%d image with %d gray levels", result.Width, result.Height, result.DistinctLevels)
	m.printer.Success("Extracted secret image saved as %s", result.OutputPath)
	return true
}

// printFindings shows warnings always and the remaining findings only when verbose
func (m *Menu) printFindings(findings []models.Finding) {
	for _, f := range findings {
		if f.Warning {
			m.printer.Warning("%s: %s", f.Description, f.Details)
			continue
		}
		m.printer.Verbose("%s: %s", f.Description, f.Details)
	}
}

func (m *Menu) reportError(err error, loadMessage string) {
	switch {
	case errors.Is(err, models.ErrMissingExtension):
		m.printer.Error("Output path must include a file name with a valid extension (e.g., .png, .jpg).")
	case errors.Is(err, models.ErrLoadFailure):
		m.printer.Error("%s", loadMessage)
	default:
		m.printer.Error("%v", err)
	}
	m.printer.Verbose("%v", err)
}
