package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient uploads image files into a single bucket and serves
// them through public URLs. One client per bucket (listing images, profile
// images).
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// extensionFor maps the allowed image content types to file extensions.
// Anything else is rejected before hitting the bucket.
func extensionFor(fileType string) (string, bool) {
	switch fileType {
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	}
	return "", false
}

// UploadFile stores the file under <folder>/<uuid><ext> and returns its
// public URL. The folder is the owning seller's profile id so that deletes
// can reconstruct object paths from URLs alone.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	ext, ok := extensionFor(fileType)
	if !ok {
		return "", fmt.Errorf("file type %s not allowed", fileType)
	}

	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=3600"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to storage: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

// DeleteFile removes the object backing a public URL. The object path is
// reconstructed from the last two URL segments (seller folder + file name).
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	parts := strings.Split(fileURL, "/")
	if len(parts) < 2 {
		return fmt.Errorf("invalid storage URL format")
	}

	objectName := parts[len(parts)-2] + "/" + parts[len(parts)-1]

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
