// Package imagecap loads a submitted design image from a file, a data URL
// or raw bytes and checks that it really is an image.
package imagecap

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// MaxBytes caps an inline image; larger uploads are rejected.
const MaxBytes = 20 << 20

const invalidImageMessage = "Please upload a valid image file."

var dataURLPattern = regexp.MustCompile(`(?is)^data:([^;,]+)?(;[^,]*)?,\s*(.+)$`)

// Image is a decoded image with its sniffed MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Base64 returns the standard base64 encoding of the image bytes.
func (img Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// DataURL renders the image as a data: URL.
func (img Image) DataURL() string {
	return "data:" + img.MIMEType + ";base64," + img.Base64()
}

func invalid() error {
	return &domain.ValidationError{Field: "image", Message: invalidImageMessage}
}

// FromBytes sniffs data and returns it as an Image. The declared type of
// the source is ignored.
func FromBytes(data []byte) (Image, error) {
	if len(data) == 0 || len(data) > MaxBytes {
		return Image{}, invalid()
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Image{}, invalid()
	}
	return Image{Data: data, MIMEType: baseType(mime.String())}, nil
}

// FromFile reads and sniffs the file at path.
func FromFile(path string) (Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	if info.IsDir() || info.Size() > MaxBytes {
		return Image{}, invalid()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	return FromBytes(data)
}

// FromDataURL decodes a base64 data: URL.
func FromDataURL(s string) (Image, error) {
	match := dataURLPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil || !strings.Contains(strings.ToLower(match[2]), "base64") {
		return Image{}, invalid()
	}
	payload := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, match[3])
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, invalid()
	}
	return FromBytes(data)
}

// Load accepts either a data: URL or a file path.
func Load(ref string) (Image, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(ref)), "data:") {
		return FromDataURL(ref)
	}
	return FromFile(ref)
}

// baseType drops MIME parameters such as "; charset=utf-8".
func baseType(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}
