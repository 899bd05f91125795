package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
)

// FileToDataURI re-encodes an uploaded file to the inline
// `data:<mime>;base64,` form stored on user, waste and donation documents.
func FileToDataURI(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
