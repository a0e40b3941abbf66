package service

import (
	"context"
	"io"
)

// FileUploadService is the object-storage port consumed by the listing and
// profile flows. Implementations upload into a fixed bucket and return a
// public URL.
type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
