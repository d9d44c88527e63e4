// Package s3feed loads contest feeds from an S3 prefix instead of a
// local directory, for boards whose data dumps are published to a
// bucket.
package s3feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/programme-lv/scoreboard/feed"
	"goa.design/clue/log"
)

type Source struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewSource(region string, bucket string, prefix string) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &Source{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Exists reports whether the object is present under the source prefix.
func (src *Source) Exists(ctx context.Context, name string) (bool, error) {
	key := path.Join(src.prefix, name)
	_, err := src.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &src.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}

// Download fetches one object under the source prefix.
func (src *Source) Download(ctx context.Context, name string) ([]byte, error) {
	key := path.Join(src.prefix, name)
	output, err := src.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &src.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", key, err)
	}
	defer output.Body.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(output.Body); err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

// downloadFeedFile fetches <base>.json, falling back to the
// zstd-compressed <base>.json.zst, mirroring feed directory reads.
func (src *Source) downloadFeedFile(ctx context.Context, base string) ([]byte, error) {
	name := base + ".json"
	ok, err := src.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if ok {
		return src.Download(ctx, name)
	}

	name = base + ".json.zst"
	log.Printf(ctx, "feed object %s.json not found, trying %s", base, name)
	content, err := src.Download(ctx, name)
	if err != nil {
		return nil, err
	}
	return feed.Decompress(content)
}

// LoadContest downloads and parses the full feed under the prefix.
func (src *Source) LoadContest(ctx context.Context) (*feed.Contest, error) {
	files := feed.Files{}
	var err error

	files.Config, err = src.downloadFeedFile(ctx, "config")
	if err != nil {
		return nil, err
	}
	files.Team, err = src.downloadFeedFile(ctx, "team")
	if err != nil {
		return nil, err
	}
	files.Run, err = src.downloadFeedFile(ctx, "run")
	if err != nil {
		return nil, err
	}

	ok, err := src.Exists(ctx, "contest.toml")
	if err != nil {
		return nil, err
	}
	if ok {
		files.ContestToml, err = src.Download(ctx, "contest.toml")
		if err != nil {
			return nil, err
		}
	}

	contest, err := feed.Parse(files)
	if err != nil {
		return nil, err
	}
	log.Printf(ctx, "loaded contest %q from s3://%s/%s",
		contest.Contest.Name, src.bucket, src.prefix)
	return contest, nil
}
