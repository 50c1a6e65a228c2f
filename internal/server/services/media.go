package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	sc "github.com/dmitrijs2005/hoopaconnect/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Bucket describes how objects of one storage bucket are exposed.
type Bucket struct {
	Name string
	// Public buckets resolve to permanent URLs; private ones to signed URLs.
	Public bool
	// AllowPDF additionally accepts application/pdf next to image/*.
	AllowPDF bool
}

// MediaService hands out presigned upload URLs and resolves stored objects
// to readable URLs.
type MediaService struct {
	config  *sc.Config
	buckets map[string]Bucket
}

func NewMediaService(cfg *sc.Config) *MediaService {
	buckets := map[string]Bucket{
		cfg.MarketplaceBucket: {Name: cfg.MarketplaceBucket, Public: true},
		cfg.AvatarBucket:      {Name: cfg.AvatarBucket, Public: true},
		cfg.IDCardBucket:      {Name: cfg.IDCardBucket, AllowPDF: true},
	}
	return &MediaService{config: cfg, buckets: buckets}
}

func (s *MediaService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// lookup checks that bucket is known and key sits under the caller's prefix.
func (s *MediaService) lookup(callerID, bucket, key string) (Bucket, error) {
	b, ok := s.buckets[bucket]
	if !ok {
		return Bucket{}, &common.ValidationError{Field: "bucket", Reason: fmt.Sprintf("unknown bucket %q", bucket)}
	}
	rest, found := strings.CutPrefix(key, callerID+"/")
	if !found || rest == "" || strings.Contains(rest, "/") {
		return Bucket{}, common.ErrorForbidden
	}
	return b, nil
}

func (b Bucket) accepts(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	return b.AllowPDF && contentType == "application/pdf"
}

// PresignUpload returns a presigned PUT URL for key in bucket. Unless upsert
// is set, an existing object under key yields common.ErrorAlreadyExists.
func (s *MediaService) PresignUpload(ctx context.Context, callerID, bucket, key, contentType string, upsert bool) (string, error) {
	b, err := s.lookup(callerID, bucket, key)
	if err != nil {
		return "", err
	}
	if !b.accepts(contentType) {
		return "", &common.ValidationError{Field: "content_type", Reason: fmt.Sprintf("%q not accepted by %s", contentType, bucket)}
	}

	client, presignClient, err := s.getClients(ctx)
	if err != nil {
		return "", err
	}

	if !upsert {
		exists, err := s.objectExists(ctx, client, bucket, key)
		if err != nil {
			return "", err
		}
		if exists {
			return "", common.ErrorAlreadyExists
		}
	}

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.config.UploadURLValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (s *MediaService) objectExists(ctx context.Context, client *s3.Client, bucket, key string) (bool, error) {
	_, err := headObject(client, ctx, &s3.HeadObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err == nil {
		return true, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return false, nil
		}
	}
	return false, fmt.Errorf("head object: %w", err)
}

// ResolveURL returns a readable URL for key: a permanent one for public
// buckets, a signed GET URL for private ones.
func (s *MediaService) ResolveURL(ctx context.Context, callerID, bucket, key string) (string, time.Time, error) {
	b, err := s.lookup(callerID, bucket, key)
	if err != nil {
		return "", time.Time{}, err
	}

	if b.Public {
		return s.publicURL(bucket, key), time.Time{}, nil
	}

	_, presignClient, err := s.getClients(ctx)
	if err != nil {
		return "", time.Time{}, err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.config.SignedURLValidity))
	if err != nil {
		return "", time.Time{}, err
	}

	return req.URL, time.Now().Add(s.config.SignedURLValidity), nil
}

func (s *MediaService) publicURL(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(s.config.S3PublicBaseURL, "/") + "/" + bucket + "/" + strings.Join(segments, "/")
}
