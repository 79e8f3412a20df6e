package mailer

import (
	"context"
	"fmt"

	"github.com/deluxhotel/booking/pkg/resend"
)

// ResendSender adapts pkg/resend to the EmailSender interface, fixing the
// sender identity.
type ResendSender struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewResendSender(client *resend.Client, from, fromName string) *ResendSender {
	return &ResendSender{client: client, from: from, fromName: fromName}
}

func (s *ResendSender) SendHTML(ctx context.Context, to, subject, html string) (string, error) {
	resp, err := s.client.Send(ctx, resend.SendRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
