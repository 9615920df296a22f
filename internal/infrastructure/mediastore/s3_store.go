package mediastore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-kratos/kratos/v2/log"
)

// S3Store 将对象写入 S3 兼容存储。
type S3Store struct {
	bucket   string
	base     string
	basePath string
	client   *s3.Client
	log      *log.Helper
	now      func() time.Time
}

// NewS3Store 构造 S3Store。未配置公开地址时按 endpoint/bucket 推导。
func NewS3Store(ctx context.Context, cfg Config, logger log.Logger) (*S3Store, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("mediastore: s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if strings.TrimSpace(cfg.AccessKeyID) != "" && strings.TrimSpace(cfg.SecretAccessKey) != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("mediastore: load aws config: %w", err)
	}

	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	publicURL := strings.TrimSpace(cfg.PublicBaseURL)
	if publicURL == "" {
		switch {
		case endpoint != "":
			publicURL = endpoint + "/" + bucket
		default:
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}
	base, basePath, err := publicBase(publicURL)
	if err != nil {
		return nil, err
	}

	return &S3Store{
		bucket:   bucket,
		base:     base,
		basePath: basePath,
		client:   client,
		log:      log.NewHelper(log.With(logger, "component", "mediastore.s3")),
		now:      time.Now,
	}, nil
}

// Put 实现 Store。
func (s *S3Store) Put(ctx context.Context, upload Upload) (string, error) {
	prepared, err := prepareUpload(upload, s.now())
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(prepared.key),
		Body:        prepared.body,
		ContentType: aws.String(prepared.contentType),
	}
	if upload.Size >= 0 {
		input.ContentLength = aws.Int64(upload.Size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.log.WithContext(ctx).Errorf("put object failed: bucket=%s key=%s err=%v", s.bucket, prepared.key, err)
		return "", fmt.Errorf("%w: put %s: %w", ErrStorageWrite, prepared.key, err)
	}

	locator := joinLocator(s.base, prepared.key)
	s.log.WithContext(ctx).Infof("object stored: key=%s content_type=%s", prepared.key, prepared.contentType)
	return locator, nil
}

// Delete 实现 Store。S3 对不存在的 key 本身返回成功，NoSuchKey 仍兜底视为成功。
func (s *S3Store) Delete(ctx context.Context, locator string) error {
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil
		}
		s.log.WithContext(ctx).Errorf("delete object failed: bucket=%s key=%s err=%v", s.bucket, key, err)
		return fmt.Errorf("%w: delete %s: %w", ErrStorageDelete, key, err)
	}
	s.log.WithContext(ctx).Infof("object deleted: key=%s", key)
	return nil
}

// Exists 实现 Store。
func (s *S3Store) Exists(ctx context.Context, locator string) (bool, error) {
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return false, err
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("mediastore: head %s: %w", key, err)
	}
	return true, nil
}

// Open 实现 Store。
func (s *S3Store) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("mediastore: get %s: %w", key, err)
	}
	return out.Body, nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
