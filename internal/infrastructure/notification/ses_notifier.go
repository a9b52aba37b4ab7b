package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrNoRecipients = errors.New("mail has no recipients")

// SESAPI is the subset of the SES v2 client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

var _ SESAPI = (*sesv2.Client)(nil)

// SESNotifier sends plain-text operator mail through Amazon SES.
type SESNotifier struct {
	ses  SESAPI
	from string
}

var _ interfaces.INotifier = (*SESNotifier)(nil)

func NewSESNotifier(ses SESAPI, from string) *SESNotifier {
	return &SESNotifier{ses: ses, from: from}
}

func (n *SESNotifier) SendMail(ctx context.Context, msg entities.MailMessage) error {
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &sestypes.Destination{ToAddresses: to},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	out, err := n.ses.SendEmail(ctx, input)
	if err != nil {
		log.Printf("[notify][gateway] ses send failed to=%v err=%v", to, err)
		return fmt.Errorf("send email: %w", err)
	}
	log.Printf("[notify][gateway] ses send success message_id=%s", aws.ToString(out.MessageId))
	return nil
}

// LogNotifier writes mail to the log. Used when NOTIFY_FROM is not set.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) SendMail(_ context.Context, msg entities.MailMessage) error {
	log.Printf("[notify][gateway] mail not sent (no sender configured) to=%v subject=%q", msg.To, msg.Subject)
	return nil
}
