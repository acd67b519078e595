package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deskpulse/deskpulse/internal/domain"
)

func sourcedTicket(source string) domain.TicketRecord {
	t := incident(base)
	t.Source = source
	return t
}

func TestChannelOf(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"Phone", "phone"},
		{"Telefone", "phone"},
		{"Email", "email"},
		{"Chat", "chat"},
		{"Chatbot", "chatbot"},
		{"Bot Assistant", "chatbot"},
		{"Portal", "portal"},
		{"", "portal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, channelOf(tt.source), "source %q", tt.source)
	}
}

func TestCalcRegisteredTickets(t *testing.T) {
	tickets := []domain.TicketRecord{
		sourcedTicket("Phone"),
		sourcedTicket("Email"),
		sourcedTicket("Portal"),
	}

	result := CalcRegisteredTickets(tickets, 10, testOpts)

	assert.Equal(t, 3, result.Registered)
	assert.Equal(t, 10, result.TotalContacts)
	assert.Equal(t, 30.0, result.Rate)
	assert.Equal(t, 1, result.ByChannel.Phone)
	assert.Equal(t, 1, result.ByChannel.Email)
	assert.Equal(t, 1, result.ByChannel.Portal)
}

func TestCalcRegisteredTickets_FallbackDenominator(t *testing.T) {
	result := CalcRegisteredTickets([]domain.TicketRecord{sourcedTicket("Email")}, 0, testOpts)

	assert.Equal(t, 1, result.TotalContacts)
	assert.Equal(t, 100.0, result.Rate)
}

func TestCalcContactsReceived_PhoneAnchoredToCalls(t *testing.T) {
	tickets := []domain.TicketRecord{
		sourcedTicket("Phone"), // skipped, call count covers phone
		sourcedTicket("Email"),
		sourcedTicket("Chat"),
	}

	result := CalcContactsReceived(tickets, 25, testOpts)

	assert.Equal(t, 25, result.ByTouchpoint.Phone)
	assert.Equal(t, 1, result.ByTouchpoint.Email)
	assert.Equal(t, 1, result.ByTouchpoint.Chat)
	assert.Equal(t, 27, result.Total)
}

func TestCalcResponseTime(t *testing.T) {
	quickIncident := incident(base)
	quickIncident.FirstRespondedAt = tsPtr(base.Add(10 * time.Minute))

	slowRequest := incident(base)
	slowRequest.Type = "Service Request"
	slowRequest.FirstRespondedAt = tsPtr(base.Add(40 * time.Minute))

	// Beyond the seven-day plausibility cap.
	artifact := incident(base)
	artifact.FirstRespondedAt = tsPtr(base.Add(8 * 24 * time.Hour))

	result := CalcResponseTime([]domain.TicketRecord{quickIncident, slowRequest, artifact}, testOpts)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 25.0, result.Overall)
	assert.Equal(t, 10.0, result.ByTouchpoint.Incidents)
	assert.Equal(t, 40.0, result.ByTouchpoint.Requests)
}

func TestCalcKnowledgeUsage(t *testing.T) {
	articleID := int64(314)

	withArticle := resolvedIncident(base, time.Hour)
	withArticle.ArticleID = &articleID

	result := CalcKnowledgeUsage([]domain.TicketRecord{withArticle, resolvedIncident(base, time.Hour), incident(base)}, testOpts)

	assert.Equal(t, 2, result.TotalResolved)
	assert.Equal(t, 1, result.WithArticle)
	assert.Equal(t, 50.0, result.Rate)
}
