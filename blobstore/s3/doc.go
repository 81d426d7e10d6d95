// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("corpora/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	rc, err := blobstore.Open(ctx, store, "words.txt.zst")
//
// Credentials come from the default AWS chain (environment, shared config,
// instance role).
package s3
