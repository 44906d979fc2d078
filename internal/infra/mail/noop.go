package mail

import (
	"context"
	"fmt"
	"log"
	"time"
)

// NoopSender logs sends without delivering anything. Used in development
// so the dashboard's dispatch flow can be exercised end to end.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) SendConsultationInvite(_ context.Context, to, name string) (string, error) {
	log.Printf("[noop mail] consultation invite to %s (%s)", to, name)
	return fmt.Sprintf("noop-%d", time.Now().UnixNano()), nil
}
