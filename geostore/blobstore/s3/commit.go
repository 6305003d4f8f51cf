package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/zerogeom/geostore/blobstore"
)

// CurrentName is the virtual blob that resolves to the latest committed
// snapshot name.
const CurrentName = "CURRENT"

// ErrConcurrentCommit is returned when another writer committed a newer
// snapshot pointer first.
var ErrConcurrentCommit = errors.New("concurrent snapshot commit detected")

// DDBClient is the subset of the DynamoDB API the commit store uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// CommitStore wraps an S3 Store with a DynamoDB-backed snapshot pointer.
// Snapshot blobs themselves are immutable objects in S3; only the pointer
// to the current one moves, through a conditional write, so concurrent
// publishers cannot silently overwrite each other.
type CommitStore struct {
	store     *Store
	ddb       DDBClient
	tableName string
	baseURI   string
}

// NewCommitStore creates a commit store over an existing S3 store.
// baseURI partitions the pointer table, e.g. "s3://bucket/prefix".
func NewCommitStore(store *Store, ddb DDBClient, tableName, baseURI string) *CommitStore {
	return &CommitStore{
		store:     store,
		ddb:       ddb,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Open opens a blob. Opening CurrentName yields a small virtual blob whose
// contents are the name of the latest committed snapshot.
func (s *CommitStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	if name != CurrentName {
		return s.store.Open(ctx, name)
	}
	_, target, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, blobstore.ErrNotFound
	}
	return &pointerBlob{content: []byte(target)}, nil
}

// Put writes a blob. Writing CurrentName commits the pointer; the payload
// is the snapshot name the pointer should move to.
func (s *CommitStore) Put(ctx context.Context, name string, data []byte) error {
	if name != CurrentName {
		return s.store.Put(ctx, name, data)
	}
	return s.commit(ctx, string(data))
}

// Create creates a writable blob in the underlying store.
func (s *CommitStore) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	return s.store.Create(ctx, name)
}

// Delete removes a blob from the underlying store.
func (s *CommitStore) Delete(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}

// List lists blobs in the underlying store.
func (s *CommitStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.store.List(ctx, prefix)
}

// current reads the committed pointer. A missing item means nothing has
// been committed yet.
func (s *CommitStore) current(ctx context.Context) (uint64, string, error) {
	resp, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		ConsistentRead: aws.Bool(true),
		Key: map[string]ddbtypes.AttributeValue{
			"base_uri": &ddbtypes.AttributeValueMemberS{Value: s.baseURI},
		},
	})
	if err != nil {
		return 0, "", err
	}
	if resp.Item == nil {
		return 0, "", nil
	}

	var version uint64
	if v, ok := resp.Item["version"].(*ddbtypes.AttributeValueMemberN); ok {
		version, err = strconv.ParseUint(v.Value, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("parse committed version: %w", err)
		}
	}
	var target string
	if v, ok := resp.Item["snapshot"].(*ddbtypes.AttributeValueMemberS); ok {
		target = v.Value
	}
	return version, target, nil
}

// commit advances the pointer with a conditional write keyed on the
// version read beforehand.
func (s *CommitStore) commit(ctx context.Context, target string) error {
	version, _, err := s.current(ctx)
	if err != nil {
		return err
	}
	next := version + 1

	cond := "attribute_not_exists(base_uri)"
	values := map[string]ddbtypes.AttributeValue{}
	if version > 0 {
		cond = "version = :expected"
		values[":expected"] = &ddbtypes.AttributeValueMemberN{Value: strconv.FormatUint(version, 10)}
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]ddbtypes.AttributeValue{
			"base_uri": &ddbtypes.AttributeValueMemberS{Value: s.baseURI},
			"version":  &ddbtypes.AttributeValueMemberN{Value: strconv.FormatUint(next, 10)},
			"snapshot": &ddbtypes.AttributeValueMemberS{Value: target},
		},
		ConditionExpression: aws.String(cond),
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}

	if _, err := s.ddb.PutItem(ctx, input); err != nil {
		var cfe *ddbtypes.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: %w", ErrConcurrentCommit, err)
		}
		return err
	}
	return nil
}

// pointerBlob serves the pointer contents from memory.
type pointerBlob struct {
	content []byte
}

func (b *pointerBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.content)) {
		return 0, errors.New("read past end of pointer blob")
	}
	n := copy(p, b.content[off:])
	return n, nil
}

func (b *pointerBlob) Close() error { return nil }

func (b *pointerBlob) Size() int64 { return int64(len(b.content)) }

func (b *pointerBlob) Bytes() ([]byte, error) { return b.content, nil }
