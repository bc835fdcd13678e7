// Package storage uploads report artifacts to S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Service handles report artifact storage in S3.
type Service struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucketName string
	region     string
}

// NewService creates a storage service against the configured bucket.
func NewService(ctx context.Context, bucketName, region string) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Service{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
		region:     region,
	}, nil
}

// UploadResult describes a stored report artifact.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadReport stores rendered report HTML under a unique key and
// returns its object URL.
func (s *Service) UploadReport(ctx context.Context, html []byte) (*UploadResult, error) {
	key := "credit-reports/credit-report-" + uuid.New().String() + ".html"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(html),
		ContentType: aws.String("text/html"),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to upload report",
			zap.String("bucket", s.bucketName),
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	utils.GetLogger().Info("Uploaded report to S3",
		zap.String("bucket", s.bucketName),
		zap.String("key", key),
		zap.Int("size", len(html)))

	return &UploadResult{
		Key: key,
		URL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key),
	}, nil
}

// PresignDownload creates a time-limited download URL for a stored report.
func (s *Service) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presignedReq, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return presignedReq.URL, nil
}
