package metrics

import (
	"strings"

	"github.com/deskpulse/deskpulse/internal/domain"
)

// ChannelBreakdown counts contacts per registration channel.
type ChannelBreakdown struct {
	Phone   int `json:"phone"`
	Email   int `json:"email"`
	Chat    int `json:"chat"`
	Chatbot int `json:"chatbot"`
	Portal  int `json:"portal"`
}

func (c ChannelBreakdown) total() int {
	return c.Phone + c.Email + c.Chat + c.Chatbot + c.Portal
}

// channelOf maps a provider source hint onto a registration channel.
// Unknown sources land on the portal channel, matching the provider's
// default entry point.
func channelOf(source string) string {
	s := strings.ToLower(source)
	switch {
	case strings.Contains(s, "chatbot") || strings.Contains(s, "bot"):
		return "chatbot"
	case strings.Contains(s, "phone") || strings.Contains(s, "telefone"):
		return "phone"
	case strings.Contains(s, "email"):
		return "email"
	case strings.Contains(s, "chat"):
		return "chat"
	default:
		return "portal"
	}
}

func (c *ChannelBreakdown) add(channel string) {
	switch channel {
	case "phone":
		c.Phone++
	case "email":
		c.Email++
	case "chat":
		c.Chat++
	case "chatbot":
		c.Chatbot++
	default:
		c.Portal++
	}
}

// RegisteredTicketsResult reports how many contacts were registered as
// eligible tickets, with a channel breakdown.
type RegisteredTicketsResult struct {
	Rate          float64          `json:"rate"`
	Registered    int              `json:"registered"`
	TotalContacts int              `json:"total_contacts"`
	ByChannel     ChannelBreakdown `json:"by_channel"`
	Formula       string           `json:"formula"`
	Error         string           `json:"error,omitempty"`
}

// CalcRegisteredTickets counts eligible tickets per channel against the
// total contact volume. When no contact total is supplied the
// registered count itself is the denominator.
func CalcRegisteredTickets(tickets []domain.TicketRecord, totalContacts int, opts Options) RegisteredTicketsResult {
	w := opts.window()

	result := RegisteredTicketsResult{
		Formula: "registration = registered contacts / total contacts x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) {
			continue
		}
		result.Registered++
		result.ByChannel.add(channelOf(t.Source))
	}

	result.TotalContacts = totalContacts
	if result.TotalContacts <= 0 {
		result.TotalContacts = result.Registered
	}
	result.Rate = percentage(result.Registered, result.TotalContacts)
	return result
}

// ContactsReceivedResult reports contact volume by touchpoint. The
// phone channel is anchored to the telephony call count so phone
// tickets are not double counted.
type ContactsReceivedResult struct {
	Total        int              `json:"total"`
	ByTouchpoint ChannelBreakdown `json:"by_touchpoint"`
	Error        string           `json:"error,omitempty"`
}

// CalcContactsReceived counts contacts per touchpoint: calls fill the
// phone channel, tickets fill the rest according to their source.
func CalcContactsReceived(tickets []domain.TicketRecord, totalCalls int, opts Options) ContactsReceivedResult {
	w := opts.window()

	var result ContactsReceivedResult
	result.ByTouchpoint.Phone = totalCalls

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) {
			continue
		}
		if channel := channelOf(t.Source); channel != "phone" {
			result.ByTouchpoint.add(channel)
		}
	}

	result.Total = result.ByTouchpoint.total()
	return result
}
