package services

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractorService pulls plain text out of uploaded documents.
// Extraction is best-effort: unreadable files yield an empty string and a
// log line, never an error to the caller. The analyze boundary treats
// empty text as missing input.
type TextExtractorService interface {
	ExtractFile(path string) string
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractFile implements TextExtractorService. The format is chosen by
// file extension; unknown extensions fall back to plain-text reading.
func (e *textExtractorService) ExtractFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx", ".doc":
		return e.extractDocx(path)
	case ".odt":
		return e.extractODT(path)
	default:
		return e.extractPlain(path)
	}
}

func (e *textExtractorService) extractPDF(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		log.Printf("⚠️  Failed to open PDF %s: %v\n", path, err)
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String())
}

func (e *textExtractorService) extractDocx(path string) string {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		log.Printf("⚠️  Failed to open DOCX %s: %v\n", path, err)
		return ""
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent())
}

// extractODT reads the content.xml entry of the ODT zip container and
// collects the character data, one line per paragraph element.
func (e *textExtractorService) extractODT(path string) string {
	reader, err := zip.OpenReader(path)
	if err != nil {
		log.Printf("⚠️  Failed to open ODT %s: %v\n", path, err)
		return ""
	}
	defer reader.Close()

	var content io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "content.xml" {
			content, err = file.Open()
			break
		}
	}
	if content == nil || err != nil {
		log.Printf("⚠️  No readable content.xml in ODT %s\n", path)
		return ""
	}
	defer content.Close()

	var textBuilder strings.Builder
	decoder := xml.NewDecoder(content)
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.CharData:
			textBuilder.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "h" {
				textBuilder.WriteString("\n")
			}
		}
	}

	return strings.TrimSpace(textBuilder.String())
}

func (e *textExtractorService) extractPlain(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Failed to read file %s: %v\n", path, err)
		return ""
	}
	return strings.TrimSpace(string(data))
}
