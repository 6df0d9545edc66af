// Package blobstore stores immutable named blobs such as run snapshots.
//
// Implementations:
//
//   - MemoryStore: in-process map, for tests and ephemeral sessions
//   - LocalStore: files below a root directory
//   - s3.Store: Amazon S3 (subpackage s3)
//   - minio.Store: MinIO and other S3-compatible services (subpackage minio)
//   - CachingStore: read-through LRU in front of any other store
//
// Names are slash-separated relative paths ("runs/<id>.lld").
package blobstore
