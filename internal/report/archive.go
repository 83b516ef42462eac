package report

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive keeps a copy of every generated report in an S3-compatible
// bucket, keyed by prefix, contract ID and file name.
type S3Archive struct {
	client objectPutter
	bucket string
	prefix string
}

// NewS3Archive builds an archive from the default AWS credential chain. A
// non-empty endpoint switches to path-style addressing for MinIO and the
// like.
func NewS3Archive(ctx context.Context, bucket, prefix, region, endpoint string) (*S3Archive, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var opts []func(*s3.Options)
	if endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return newS3Archive(s3.NewFromConfig(cfg, opts...), bucket, prefix), nil
}

func newS3Archive(client objectPutter, bucket, prefix string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, prefix: prefix}
}

// Archive uploads a rendered report and returns its object key.
func (a *S3Archive) Archive(ctx context.Context, d Data, filename, contentType string, body []byte) (string, error) {
	key := path.Join(a.prefix, d.Contract.ID.String(), filename)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"contract-number": d.Contract.ContractNumber,
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	return key, nil
}
