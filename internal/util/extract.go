package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

var ErrFileNotFound = errors.New("file not found")

// ExtractPDFText returns the concatenated page text of a PDF. A missing file
// is an error; any parse problem is logged and yields an empty string.
func ExtractPDFText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("no file found at %s: %w", path, ErrFileNotFound)
		}
		log.Printf("Error reading PDF %s: %v", path, err)
		return "", nil
	}

	doc, err := fitz.New(path)
	if err != nil {
		log.Printf("Error reading PDF: %v", err)
		return "", nil
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			log.Printf("Error reading PDF page %d: %v", n+1, err)
			return "", nil
		}
		sb.WriteString(pageText)
	}

	text := strings.TrimSpace(sb.String())
	log.Printf("Extracted %d chars from %d page(s)", len(text), doc.NumPage())
	return text, nil
}
