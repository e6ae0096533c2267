package minio

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
)

// UploadJSON 上传 JSON 制品到存储桶
func UploadJSON(ctx context.Context, objectName string, data []byte) error {
	_, err := Client.PutObject(ctx, Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}
