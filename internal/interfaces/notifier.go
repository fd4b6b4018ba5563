package interfaces

import "context"

type Notifier interface {
	SendText(ctx context.Context, msg string) error
	SendPhoto(ctx context.Context, png []byte, caption string) error
}
