// Package s3 provides an S3 implementation of the blobstore.Store
// interface, plus an optional DynamoDB-backed commit pointer for safe
// concurrent snapshot publication.
//
// # Usage
//
//	client, err := s3.NewClient(ctx, s3.WithRegion("us-east-1"))
//	store := s3.NewStore(client, "my-bucket", "geometries/")
//
// # Features
//
//   - Range reads for partial snapshot fetches
//   - Multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
