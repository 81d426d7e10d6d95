// Package blobstore provides read-only access to the text inputs fed to the
// interners.
//
// Store is the interface for opening named inputs. Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-memory map, for tests and embedding
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible services
//
// # Compressed Inputs
//
// Decompress wraps a reader with the decoder matching the input name's
// extension (.zst, .gz, .lz4); Open combines Store.Open with it.
package blobstore
