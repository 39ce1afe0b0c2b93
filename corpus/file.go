package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Document file formats. JSON is what pipeline export scripts produce;
// msgpack is the compact binary form.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned for a format or file extension no codec
// handles.
var ErrUnknownFormat = errors.New("unknown document format")

// FormatForPath returns the format implied by the file extension:
// .json for JSON, .mp for msgpack.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".mp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load decodes one document from r.
func Load(r io.Reader, format string) (Doc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc Doc
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Doc{}, fmt.Errorf("JSON decoding error: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &doc); err != nil {
			return Doc{}, fmt.Errorf("msgpack decoding error: %w", err)
		}
	default:
		return Doc{}, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	return doc, nil
}

// Dump encodes one document to w.
func Dump(w io.Writer, doc Doc, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case FormatMsgpack:
		data, err = msgpack.Marshal(doc)
	default:
		return fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	return nil
}

// ReadFile reads a document file, choosing the codec by extension.
func ReadFile(path string) (Doc, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Doc{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

// WriteFile writes a document file, choosing the codec by extension.
func WriteFile(path string, doc Doc) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := Dump(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
