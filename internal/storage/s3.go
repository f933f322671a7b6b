// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package storage provides the S3-compatible media gateway used for post
// images and PDF attachments. It wraps the AWS SDK v2 and is configured
// for path-style access so any S3-compatible provider works.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MediaFile describes one stored object in a listing.
type MediaFile struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Client wraps an S3 client for media operations on the public media
// bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for served files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without media storage.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object under the given folder and returns its public
// URL. Objects are public-read so the app and site can serve them
// directly.
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := folder + "/" + filename
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return c.FileURL(key), nil
}

// Replace uploads a new object and removes the old one, keyed by its
// public URL. Used when a post image is swapped in the editor. A missing
// old object is not an error.
func (c *Client) Replace(ctx context.Context, oldURL, folder, filename, contentType string, body io.Reader, size int64) (string, error) {
	url, err := c.Upload(ctx, folder, filename, contentType, body, size)
	if err != nil {
		return "", err
	}
	if key, ok := c.ExtractKey(oldURL); ok {
		if err := c.Delete(ctx, key); err != nil {
			return url, fmt.Errorf("remove replaced object: %w", err)
		}
	}
	return url, nil
}

// Delete removes an object by key.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// listPrefix normalizes a folder into an object-key prefix. An empty
// folder means no prefix, so the whole bucket is listed.
func listPrefix(folder string) string {
	if folder == "" {
		return ""
	}
	return strings.TrimRight(folder, "/") + "/"
}

// List returns the objects under a folder prefix, newest metadata as
// reported by the provider. An empty folder lists the whole bucket.
func (c *Client) List(ctx context.Context, folder string) ([]MediaFile, error) {
	prefix := listPrefix(folder)
	var files []MediaFile

	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			f := MediaFile{
				Key: aws.ToString(obj.Key),
				URL: c.FileURL(aws.ToString(obj.Key)),
			}
			if obj.Size != nil {
				f.Size = *obj.Size
			}
			if obj.LastModified != nil {
				f.LastModified = *obj.LastModified
			}
			files = append(files, f)
		}
	}
	return files, nil
}

// FileURL returns the public URL for a stored object. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// ExtractKey extracts the object key from a public file URL. Returns
// ("", false) if the URL does not belong to this storage.
func (c *Client) ExtractKey(rawURL string) (string, bool) {
	// Try publicURL prefix first (CDN or custom domain).
	if c.publicURL != "" {
		prefix := c.publicURL + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return rawURL[len(prefix):], true
		}
	}

	// Try endpoint/bucket prefix (path-style S3).
	prefix := c.endpoint + "/" + c.bucket + "/"
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}

	return "", false
}
