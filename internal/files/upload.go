package files

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Upload is a file received from a client.
type Upload interface {
	Filename() string
	Size() int64
	Open() (io.ReadCloser, error)
}

type multipartUpload struct {
	header *multipart.FileHeader
}

// FromMultipart adapts a parsed multipart file. A nil header yields a nil Upload.
func FromMultipart(header *multipart.FileHeader) Upload {
	if header == nil {
		return nil
	}
	return multipartUpload{header: header}
}

func (u multipartUpload) Filename() string { return u.header.Filename }
func (u multipartUpload) Size() int64      { return u.header.Size }

func (u multipartUpload) Open() (io.ReadCloser, error) {
	return u.header.Open()
}

type memoryUpload struct {
	name string
	data []byte
}

// NewUpload wraps bytes already in memory.
func NewUpload(name string, data []byte) Upload {
	return memoryUpload{name: name, data: data}
}

func (u memoryUpload) Filename() string { return u.name }
func (u memoryUpload) Size() int64      { return int64(len(u.data)) }

func (u memoryUpload) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(u.data)), nil
}

// ReadAll reads the whole upload into memory.
func ReadAll(file Upload) ([]byte, error) {
	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Filename(), err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Filename(), err)
	}
	return data, nil
}
