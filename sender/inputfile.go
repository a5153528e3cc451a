package sender

import (
	"io"
	"os"
	"path/filepath"
)

// InputFile is the file carried by a media message.
// Use one of the constructors: FromPath, FromReader, FromFileID, FromURL.
type InputFile struct {
	// Path is a local file, opened when the request is built and closed
	// once the request has completed.
	Path string

	// FileID references a file already stored on Telegram servers.
	FileID string

	// URL references a file by HTTP URL (Telegram downloads it).
	URL string

	// Reader provides file content for upload. It is consumed once.
	Reader io.Reader

	// FileName is sent with Reader uploads. Path uploads default to the
	// base name of Path.
	FileName string
}

// FromPath creates an InputFile that uploads a local file.
func FromPath(path string) InputFile {
	return InputFile{Path: path}
}

// FromReader creates an InputFile from an io.Reader.
// The reader is streamed directly, not buffered in memory.
func FromReader(r io.Reader, filename string) InputFile {
	return InputFile{Reader: r, FileName: filename}
}

// FromFileID creates an InputFile referencing an existing Telegram file.
func FromFileID(fileID string) InputFile {
	return InputFile{FileID: fileID}
}

// FromURL creates an InputFile from a URL.
func FromURL(url string) InputFile {
	return InputFile{URL: url}
}

// IsUpload returns true if the content travels in the request body.
func (f InputFile) IsUpload() bool {
	return f.Path != "" || f.Reader != nil
}

// IsEmpty returns true if the InputFile has no source set.
func (f InputFile) IsEmpty() bool {
	return f.Path == "" && f.FileID == "" && f.URL == "" && f.Reader == nil
}

// Value returns the FileID or URL sent as a plain parameter.
func (f InputFile) Value() string {
	if f.FileID != "" {
		return f.FileID
	}
	return f.URL
}

// open returns the upload content. The closer is nil for Reader sources,
// which belong to the caller. Errors from os.Open are returned unchanged.
func (f InputFile) open() (io.Reader, string, io.Closer, error) {
	if f.Path == "" {
		return f.Reader, f.FileName, nil, nil
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, "", nil, err
	}
	name := f.FileName
	if name == "" {
		name = filepath.Base(f.Path)
	}
	return file, name, file, nil
}
