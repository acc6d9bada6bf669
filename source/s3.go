package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/cespare/advent/dial"
)

// ObjectGetter is the subset of *s3.S3 that S3 needs.
type ObjectGetter interface {
	GetObjectWithContext(aws.Context, *s3.GetObjectInput, ...request.Option) (*s3.GetObjectOutput, error)
}

// S3 reads newline-delimited instructions from an S3 object.
type S3 struct {
	Client ObjectGetter
	Bucket string
	Key    string
}

// ParseS3URL splits a URL of the form s3://bucket/key.
func ParseS3URL(s string) (bucket, key string, err error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("not an s3 URL: %q", s)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("s3 URL must be s3://bucket/key; got %q", s)
	}
	return u.Host, key, nil
}

func (s S3) Instructions(ctx context.Context) ([]dial.Instruction, error) {
	out, err := s.Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	defer out.Body.Close()
	insns, err := Reader{out.Body}.Instructions(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	return insns, nil
}
