package media

import (
	"bytes"
	"io"
	"mime/multipart"
)

// File is an uploaded file as received from a client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	open        func() (io.ReadCloser, error)
}

func NewFile(name, contentType string, size int64, open func() (io.ReadCloser, error)) *File {
	return &File{Name: name, ContentType: contentType, Size: size, open: open}
}

// FromHeader wraps a multipart part. The declared Content-Type of the part is
// what gets validated.
func FromHeader(fh *multipart.FileHeader) *File {
	if fh == nil {
		return nil
	}
	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func FromBytes(name, contentType string, data []byte) *File {
	return &File{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (f *File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return f.open()
}

// Files maps a multipart field name to its file.
type Files map[string]*File
