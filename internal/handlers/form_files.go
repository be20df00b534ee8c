package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"dealerdesk/internal/utils"
	"dealerdesk/pkg/storage"
)

// readFormFile loads a single optional multipart file. A missing field
// returns (nil, nil) so callers can treat uploads as optional.
func readFormFile(form *multipart.Form, field string) (*storage.NamedFile, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return loadFileHeader(headers[0])
}

func readFormFiles(headers []*multipart.FileHeader) ([]storage.NamedFile, error) {
	files := make([]storage.NamedFile, 0, len(headers))
	for _, header := range headers {
		file, err := loadFileHeader(header)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}

func loadFileHeader(header *multipart.FileHeader) (*storage.NamedFile, error) {
	if header.Size > storage.MaxObjectSize {
		return nil, fmt.Errorf("%s exceeds the %d byte upload limit", header.Filename, storage.MaxObjectSize)
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.New("could not read uploaded file " + header.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New("could not read uploaded file " + header.Filename)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = utils.GetContentType(header.Filename)
	}

	return &storage.NamedFile{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
