package publications

import (
	"bytes"

	"github.com/JaimeStill/scholar/internal/files"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func extractPageCount(file files.Upload) (*int, error) {
	data, err := files.ReadAll(file)
	if err != nil {
		return nil, err
	}

	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return &count, nil
}
