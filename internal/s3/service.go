package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shama2369/trichygold-campaignsc/internal/config"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

// Service stores and retrieves campaign image attachments
type Service interface {
	UploadImage(ctx context.Context, image *Image) error
	GetImage(ctx context.Context, key string) ([]byte, error)
}

type s3ServiceImpl struct {
	client *s3.Client
	config *config.S3Config
}

func NewService(config *config.Configuration) (Service, error) {
	if !config.S3.Enabled {
		return nil, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(config.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load aws config").
			Mark(ierr.ErrSystem)
	}

	return &s3ServiceImpl{
		config: &config.S3,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

func (s *s3ServiceImpl) objectKey(key string) string {
	if s.config.KeyPrefix != "" {
		return fmt.Sprintf("%s/%s", s.config.KeyPrefix, key)
	}
	return key
}

func (s *s3ServiceImpl) UploadImage(ctx context.Context, image *Image) error {
	if image == nil || len(image.Data) == 0 {
		return ierr.NewError("empty image payload").
			WithHint("Image payload is required").
			Mark(ierr.ErrValidation)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(s.objectKey(image.Key)),
		Body:        bytes.NewReader(image.Data),
		ContentType: aws.String(image.ContentType),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHintf("failed to upload image %s", image.Key).
			Mark(ierr.ErrSystem)
	}
	return nil
}

func (s *s3ServiceImpl) GetImage(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to fetch image %s", key).
			Mark(ierr.ErrSystem)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to read image %s", key).
			Mark(ierr.ErrSystem)
	}
	return data, nil
}
