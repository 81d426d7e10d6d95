// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library, so it also reads from other
// S3-compatible services like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "minioadmin", "minioadmin", false, "corpora")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rc, err := blobstore.Open(ctx, store, "words.txt.gz")
//
// An existing client can be wrapped directly:
//
//	client, _ := minio.New("s3.example.com:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,                    // Use HTTPS
//	    Region: "us-east-1",             // Optional region
//	})
//	store := minioblob.NewStore(client, "my-bucket", "corpora/")
package minio
