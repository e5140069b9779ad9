package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"user-account-api/config"
)

const (
	newAccountTemplate = "new_account.html"
	testEmailTemplate  = "test_email.html"
)

// Client delivers templated html emails over SMTP. When SMTP is disabled in
// config every send is a logged no-op, so the notification pipeline can run
// without a mail server.
type Client struct {
	cfg          config.SMTP
	addr         string
	templatesDir string
	projectName  string
	log          *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) (*Client, error) {
	c := &Client{
		cfg:          cfg.SMTP,
		templatesDir: cfg.OpenAPI.TemplatesDir,
		projectName:  cfg.App.Name,
		log:          logger,
	}
	if cfg.SMTP.Enabled {
		addr, err := cfg.SMTPAddr()
		if err != nil {
			return nil, err
		}
		c.addr = addr
	}

	return c, nil
}

func (c *Client) SendNewAccountEmail(ctx context.Context, emailTo, username string) error {
	subject := fmt.Sprintf("%s - New account for user %s", c.projectName, username)
	html, err := renderTemplate(c.templatesDir, newAccountTemplate, map[string]any{
		"ProjectName": c.projectName,
		"Username":    username,
		"Email":       emailTo,
	})
	if err != nil {
		return err
	}

	return c.send(ctx, emailTo, subject, html)
}

func (c *Client) SendTestEmail(ctx context.Context, emailTo string) error {
	subject := fmt.Sprintf("%s - Test email", c.projectName)
	html, err := renderTemplate(c.templatesDir, testEmailTemplate, map[string]any{
		"ProjectName": c.projectName,
		"Email":       emailTo,
	})
	if err != nil {
		return err
	}

	return c.send(ctx, emailTo, subject, html)
}

func (c *Client) send(ctx context.Context, emailTo, subject, html string) error {
	if !c.cfg.Enabled {
		c.log.Info("smtp disabled, skipping email", zap.String("to", MaskEmail(emailTo)))
		return nil
	}

	msg := c.message(emailTo, subject, html)

	dialer := &net.Dialer{Timeout: c.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	cl, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer cl.Close()

	if ok, _ := cl.Extension("STARTTLS"); ok {
		if err = cl.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if c.cfg.User != "" && c.cfg.Password != "" {
		auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)
		if err = cl.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err = cl.Mail(c.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = cl.Rcpt(emailTo); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := cl.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	c.log.Info("sent email", zap.String("to", MaskEmail(emailTo)))

	return cl.Quit()
}

func (c *Client) message(emailTo, subject, html string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", c.cfg.FromName, c.cfg.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", emailTo)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	return b.String()
}
