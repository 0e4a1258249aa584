package mocks

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if fn, ok := args.Get(0).(func(string) (io.ReadCloser, error)); ok {
		return fn(objectName)
	}
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)
	if fn, ok := args.Get(0).(func(minio.ListObjectsOptions) <-chan minio.ObjectInfo); ok {
		return fn(opts)
	}
	if ch, ok := args.Get(0).(<-chan minio.ObjectInfo); ok {
		return ch
	}
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

// Objects returns a closed, pre-filled listing channel for ListObjects expectations.
func Objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

// Body wraps a string as an object body for GetObject expectations.
func Body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// NoSuchKey is the error minio returns for a missing object.
func NoSuchKey(key string) error {
	return minio.ErrorResponse{Code: "NoSuchKey", Key: key, StatusCode: 404}
}

// Bucket returns a Client whose listings and reads are served from files,
// keyed by object name. Writes succeed and are discarded.
func Bucket(files map[string]string) *Client {
	c := new(Client)
	c.On("BucketExists", mock.Anything, mock.Anything).Return(true, nil).Maybe()
	c.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Maybe()
	c.On("ListObjects", mock.Anything, mock.Anything, mock.Anything).
		Return(func(opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			var keys []string
			for k := range files {
				if strings.HasPrefix(k, opts.Prefix) {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			return Objects(keys...)
		}).Maybe()
	c.On("GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(key string) (io.ReadCloser, error) {
			body, ok := files[key]
			if !ok {
				return nil, NoSuchKey(key)
			}
			return Body(body), nil
		}, nil).Maybe()
	return c
}
