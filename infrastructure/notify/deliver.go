package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quantwatch/quantwatch/internal/config"
)

// Deliverer sends one formatted digest to its channel.
type Deliverer interface {
	Deliver(ctx context.Context, subject, body string) error
}

// DelivererFor picks the delivery channel for the given email settings.
// Email is used only when it is enabled and fully configured; anything
// else falls back to the console.
func DelivererFor(email config.EmailConfig, out io.Writer) Deliverer {
	if email.Enabled() && email.IsComplete() {
		return NewEmailDeliverer(email)
	}
	return NewConsoleDeliverer(out)
}

// ConsoleDeliverer prints digests to a writer.
type ConsoleDeliverer struct {
	out io.Writer
}

// NewConsoleDeliverer creates a ConsoleDeliverer. A nil writer means
// stdout.
func NewConsoleDeliverer(out io.Writer) *ConsoleDeliverer {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleDeliverer{out: out}
}

// Deliver prints the digest with a banner.
func (d *ConsoleDeliverer) Deliver(_ context.Context, subject, body string) error {
	rule := strings.Repeat("=", 80)
	_, err := fmt.Fprintf(d.out, "\n%s\n%s\n%s\n%s\n%s\n\n", rule, subject, rule, body, rule)
	if err != nil {
		return fmt.Errorf("failed to write digest: %w", err)
	}
	return nil
}
