package images

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Storage persists uploaded post images. In production images go to S3;
// otherwise they land in a local directory served under /uploads/.
type Storage struct {
	Bucket string
	Dir    string
}

func NewStorage(bucket, dir string) *Storage {
	return &Storage{Bucket: bucket, Dir: dir}
}

func (s *Storage) Store(ctx context.Context, name string, body io.Reader) (string, error) {
	if os.Getenv("GOENV") == "production" && s.Bucket != "" {
		return s.storeS3(ctx, name, body)
	}

	return s.storeLocal(name, body)
}

func (s *Storage) storeS3(ctx context.Context, name string, body io.Reader) (string, error) {
	sess, err := session.NewSession()
	if err != nil {
		return "", fmt.Errorf("error creating AWS session: %v", err)
	}

	uploader := s3manager.NewUploader(sess)

	result, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(name),
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("error uploading image to S3: %v", err)
	}

	return result.Location, nil
}

func (s *Storage) storeLocal(name string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("error creating uploads dir: %v", err)
	}

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("error creating image file: %v", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("error writing image file: %v", err)
	}

	return "/uploads/" + name, nil
}
