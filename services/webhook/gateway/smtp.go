package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"time"

	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	nr "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/retry"
	"github.com/piresc/gamestore-webhook/internal/utils"
	"github.com/wneessen/go-mail"
)

const (
	authCodeSubject = "Seu código de autenticação"
	authCodeBody    = "Olá,\n\nSeu código de autenticação é: %s.\nEle é válido por %d minutos.\n\nAtenciosamente,\nCCAI Platform"

	smtpsPort   = 465
	dialTimeout = 10 * time.Second
)

// SMTPGateway sends auth codes through an authenticated SMTP relay
type SMTPGateway struct {
	cfg   models.SMTPConfig
	retry retry.Config
}

func NewSMTPGateway(cfg models.SMTPConfig) *SMTPGateway {
	policy := retry.DefaultConfig()
	policy.Retryable = retryableSendError
	return &SMTPGateway{cfg: cfg, retry: policy}
}

// retryableSendError allows another attempt only for network failures and 4xx replies.
// Auth rejections and anything unrecognised fail at once.
func retryableSendError(err error) bool {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		return sendErr.IsTemp()
	}
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code >= 400 && protoErr.Code < 500
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// NewAuthCodeMessage builds the plain-text email carrying code
func (g *SMTPGateway) NewAuthCodeMessage(to, code string, ttl time.Duration) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(g.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(authCodeSubject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(authCodeBody, code, int(ttl.Minutes())))

	return msg, nil
}

func (g *SMTPGateway) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(g.cfg.Port),
		mail.WithTimeout(dialTimeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(g.cfg.Username),
		mail.WithPassword(g.cfg.Password),
	}
	if g.cfg.Port == smtpsPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	return mail.NewClient(g.cfg.Host, opts...)
}

// SendAuthCode mails code to the customer
func (g *SMTPGateway) SendAuthCode(ctx context.Context, to, code string, ttl time.Duration) error {
	msg, err := g.NewAuthCodeMessage(to, code, ttl)
	if err != nil {
		return err
	}

	client, err := g.client()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := g.send(ctx, client, msg); err != nil {
		return fmt.Errorf("failed to send auth code email: %w", err)
	}

	logger.InfoCtx(ctx, "Auth code email sent", logger.String("to", utils.MaskEmail(to)))
	return nil
}

// send retries delivery of msg until the relay has accepted it
func (g *SMTPGateway) send(ctx context.Context, client *mail.Client, msg *mail.Msg) error {
	endpoint := fmt.Sprintf("smtp://%s:%d", g.cfg.Host, g.cfg.Port)
	return retry.Do(ctx, "smtp send", g.retry, func(ctx context.Context) error {
		return nr.WithExternalSegment(ctx, "smtp", "SEND", endpoint, func() error {
			return deliver(ctx, client, msg)
		})
	})
}

func deliver(ctx context.Context, client *mail.Client, msg *mail.Msg) error {
	smtpClient, err := client.DialToSMTPClientWithContext(ctx)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	if err := client.SendWithSMTPClient(smtpClient, msg); err != nil {
		_ = client.CloseWithSMTPClient(smtpClient)
		return fmt.Errorf("send failed: %w", err)
	}

	// the message is accepted at this point, a failed QUIT must not trigger a resend
	if err := client.CloseWithSMTPClient(smtpClient); err != nil {
		logger.WarnCtx(ctx, "SMTP connection not closed cleanly after send", logger.Err(err))
	}
	return nil
}
