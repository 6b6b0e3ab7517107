package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/km-arc/go-injector/framework/app"
	"github.com/km-arc/go-injector/framework/container"
)

// ── Demo services ────────────────────────────────────────────────────────────

type SMTPTransport struct {
	Host string
	Port int `inject:",optional"`
}

type Mailer struct {
	Transport *SMTPTransport `inject:"smtp_transport"`
	From      string         `inject:"sender"`
	Log       *zap.Logger    `inject:"logger"`
}

func (m *Mailer) Send(to, subject string) {
	m.Log.Info("mail sent",
		zap.String("from", m.From),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("via", fmt.Sprintf("%s:%d", m.Transport.Host, m.Transport.Port)),
	)
}

// MailServiceProvider wires the demo mail stack.
type MailServiceProvider struct{ container.BaseProvider }

func (p *MailServiceProvider) Register(c *container.Container) {
	c.RegisterSingleton(container.Struct[SMTPTransport]()).
		AddArgument("host", "localhost").
		AddArgument("port", 1025)

	c.Register(container.Struct[Mailer]()).
		AddArgument("sender", "noreply@example.com")
}

func main() {
	application := app.New() // loads .env automatically

	if err := application.RegisterProvider(&MailServiceProvider{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := application.Boot(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mailer, err := container.Resolve[*Mailer](application.Container, "mailer")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mailer.Send("ada@example.com", "Welcome")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
