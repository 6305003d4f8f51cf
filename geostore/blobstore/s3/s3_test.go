package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zerogeom/geostore/blobstore"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) HeadObject(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.HeadObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.DeleteObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.ListObjectsV2Output), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) CreateMultipartUpload(ctx context.Context, params *awss3.CreateMultipartUploadInput, optFns ...func(*awss3.Options)) (*awss3.CreateMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.CreateMultipartUploadOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) UploadPart(ctx context.Context, params *awss3.UploadPartInput, optFns ...func(*awss3.Options)) (*awss3.UploadPartOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.UploadPartOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) CompleteMultipartUpload(ctx context.Context, params *awss3.CompleteMultipartUploadInput, optFns ...func(*awss3.Options)) (*awss3.CompleteMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.CompleteMultipartUploadOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockS3Client) AbortMultipartUpload(ctx context.Context, params *awss3.AbortMultipartUploadInput, optFns ...func(*awss3.Options)) (*awss3.AbortMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*awss3.AbortMultipartUploadOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStore_Open(t *testing.T) {
	mockClient := new(mockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	t.Run("not found", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *awss3.HeadObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "prefix/missing"
		})).Return(nil, &types.NotFound{}).Once()

		_, err := store.Open(context.Background(), "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *awss3.HeadObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "prefix/snap"
		})).Return(&awss3.HeadObjectOutput{
			ContentLength: aws.Int64(100),
		}, nil).Once()

		blob, err := store.Open(context.Background(), "snap")
		require.NoError(t, err)
		assert.Equal(t, int64(100), blob.Size())
	})
}

func TestStore_ReadAt(t *testing.T) {
	mockClient := new(mockS3Client)

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *awss3.GetObjectInput) bool {
		return *input.Range == "bytes=2-5"
	})).Return(&awss3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("2345")),
	}, nil).Once()

	blob := &s3Blob{client: mockClient, bucket: "b", key: "k", size: 10}
	buf := make([]byte, 4)
	n, err := blob.ReadAt(context.Background(), buf, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("2345"), buf)
}

func TestStore_Delete(t *testing.T) {
	mockClient := new(mockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(input *awss3.DeleteObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "prefix/old"
	})).Return(&awss3.DeleteObjectOutput{}, nil).Once()

	require.NoError(t, store.Delete(context.Background(), "old"))
}

func TestStore_List(t *testing.T) {
	mockClient := new(mockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix/")

	mockClient.On("ListObjectsV2", mock.Anything, mock.Anything).Return(&awss3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("prefix/snap-2")},
			{Key: aws.String("prefix/snap-1")},
		},
	}, nil).Once()

	keys, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"snap-1", "snap-2"}, keys)
}

type mockDDBClient struct {
	mock.Mock
}

func (m *mockDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.PutItemOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDDBClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.GetItemOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCommitStore(t *testing.T) {
	t.Run("first commit and read back", func(t *testing.T) {
		ddb := new(mockDDBClient)
		store := NewCommitStore(NewStore(new(mockS3Client), "b", ""), ddb, "commits", "s3://b")

		ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()
		ddb.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(base_uri)"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		require.NoError(t, store.Put(context.Background(), CurrentName, []byte("snap-1")))

		ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{
			Item: map[string]ddbtypes.AttributeValue{
				"version":  &ddbtypes.AttributeValueMemberN{Value: "1"},
				"snapshot": &ddbtypes.AttributeValueMemberS{Value: "snap-1"},
			},
		}, nil).Once()

		blob, err := store.Open(context.Background(), CurrentName)
		require.NoError(t, err)
		data, err := blobstore.ReadAll(context.Background(), blob)
		require.NoError(t, err)
		assert.Equal(t, "snap-1", string(data))
	})

	t.Run("conflicting commit", func(t *testing.T) {
		ddb := new(mockDDBClient)
		store := NewCommitStore(NewStore(new(mockS3Client), "b", ""), ddb, "commits", "s3://b")

		ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{
			Item: map[string]ddbtypes.AttributeValue{
				"version":  &ddbtypes.AttributeValueMemberN{Value: "3"},
				"snapshot": &ddbtypes.AttributeValueMemberS{Value: "snap-3"},
			},
		}, nil).Once()
		ddb.On("PutItem", mock.Anything, mock.Anything).Return(nil, &ddbtypes.ConditionalCheckFailedException{}).Once()

		err := store.Put(context.Background(), CurrentName, []byte("snap-4"))
		assert.ErrorIs(t, err, ErrConcurrentCommit)
	})

	t.Run("pointer missing", func(t *testing.T) {
		ddb := new(mockDDBClient)
		store := NewCommitStore(NewStore(new(mockS3Client), "b", ""), ddb, "commits", "s3://b")

		ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		_, err := store.Open(context.Background(), CurrentName)
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}
