package contracts

import "context"

type Storage interface {
	UploadBytes(ctx context.Context, payload []byte, objectName, contentType string) error
}
