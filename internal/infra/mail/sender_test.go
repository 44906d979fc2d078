package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsultationBody(t *testing.T) {
	html, err := ConsultationBody("Jane", "https://calendly.com/ryan/15min")

	assert.NoError(t, err)
	assert.Contains(t, html, "Hi Jane,")
	assert.Contains(t, html, `href="https://calendly.com/ryan/15min"`)
	assert.Contains(t, html, "Schedule a Meeting")
}

func TestConsultationBodyEscapesName(t *testing.T) {
	html, err := ConsultationBody("<script>alert(1)</script>", "https://calendly.com/ryan/15min")

	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
