// Package imagestore keeps body-check photos either inline in the journal or in an S3 bucket.
package imagestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
)

const keyPrefix = "body-checks"

type DataURL struct {
	ContentType string
	Data        []byte
}

// ParseDataURL decodes "data:<mime>;base64,<payload>"
func ParseDataURL(s string) (*DataURL, error) {
	meta, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, errorvalues.ErrInvalidImage
	}
	mediaType, found := strings.CutPrefix(meta, "data:")
	if !found {
		return nil, errorvalues.ErrInvalidImage
	}
	contentType, encoding, _ := strings.Cut(mediaType, ";")
	if encoding != "base64" || !strings.HasPrefix(contentType, "image/") {
		return nil, errorvalues.ErrInvalidImage
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidImage, err)
	}
	return &DataURL{ContentType: contentType, Data: data}, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	exts, _ := mime.ExtensionsByType(contentType)
	if len(exts) > 0 {
		return exts[0]
	}
	_, sub, ok := strings.Cut(contentType, "/")
	if ok && sub != "" {
		return "." + sub
	}
	return ""
}

// InlineStore keeps the data URL itself as the stored reference
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (is *InlineStore) Store(ctx context.Context, date, dataURL string) (string, error) {
	if _, err := ParseDataURL(dataURL); err != nil {
		return "", err
	}
	return dataURL, nil
}

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Cfg struct {
	Region    string
	Bucket    string
	PublicURL string
}

type S3Store struct {
	client    ObjectPutter
	bucket    string
	publicURL string
	now       func() time.Time
}

func NewS3Store(cfg *S3Cfg) *S3Store {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Fatal("loading aws config error: ", err)
	}
	return NewS3StoreWithClient(s3.NewFromConfig(awsCfg), cfg)
}

func NewS3StoreWithClient(client ObjectPutter, cfg *S3Cfg) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		now:       time.Now,
	}
}

// Store uploads the decoded image and returns its public URL
func (ss *S3Store) Store(ctx context.Context, date, dataURL string) (string, error) {
	img, err := ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s-%d%s", keyPrefix, date, ss.now().UnixNano(), extension(img.ContentType))
	_, err = ss.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return "", errors.New("uploading image error: " + err.Error())
	}
	return ss.publicURL + "/" + key, nil
}
