package notify

import "context"

type Notifier interface {
	Send(ctx context.Context, topic, title, body string) error
}
