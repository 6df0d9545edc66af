// Package s3 provides a blobstore.BlobStore backed by Amazon S3.
//
// Small blobs are written with a single PutObject call; blobs at or above
// UploadConfig.MultipartThreshold go through the SDK's multipart
// uploader.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "lloyd/")
package s3
