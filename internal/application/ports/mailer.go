package ports

import (
	"context"
)

type Mailer interface {
	SendNewAccountEmail(ctx context.Context, emailTo, username string) error
	SendTestEmail(ctx context.Context, emailTo string) error
}
