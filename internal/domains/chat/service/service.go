package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"senateway/infras/gemini"
	"senateway/infras/otel"
	"senateway/internal/domains/chat/model/dto"
	"senateway/shared/constant"
)

// preamble pins the assistant to the guesthouse facts. The raw guest question
// is appended to it for every turn; nothing is persisted between turns.
const preamble = `You are the virtual assistant for SenateWay Guesthouse in Kimberley, South Africa.
Answer the guest's question using these facts:
- 10 rooms ranging from R400 to R1600 per night
- Free WiFi throughout the property
- Free private parking for guests
- Swimming pool
- Check-in from 2:00 PM, check-out by 10:00 AM
- About 6 km from Kimberley Airport
- About 1.9 km from the nearest shopping malls
Keep answers short, friendly, and accurate. If you are not sure, say so and point the guest to +27 123 456 789 or info@senateway.co.za.

Guest question: `

const (
	fallbackWiFi    = "Yes, free WiFi is available throughout the property."
	fallbackParking = "Yes, we offer free private parking for guests."
	fallbackAirport = "We're about 6 km from Kimberley Airport (around 10 minutes by car)."
	fallbackGeneric = "I'm sorry, I don't have an answer for that right now. Please call us on +27 123 456 789 or email info@senateway.co.za and we'll gladly help."
	fallbackOffline = "I'm having trouble connecting right now. Please try again in a moment, or reach us directly on +27 123 456 789 or info@senateway.co.za."
)

type Chat interface {
	Reply(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
}

type serviceImpl struct {
	gemini gemini.Client
	otel   otel.Otel
}

func New(gemini gemini.Client, otel otel.Otel) Chat {
	return &serviceImpl{
		gemini: gemini,
		otel:   otel,
	}
}

// Reply always answers: model errors and empty completions degrade to canned
// responses instead of surfacing an error to the guest.
func (s *serviceImpl) Reply(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()

	reply, err := s.gemini.GenerateContent(ctx, preamble+req.Message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate chat reply")

		return dto.ChatResponse{Reply: fallbackOffline}, nil
	}

	if reply == constant.Empty {
		reply = fallbackFor(req.Message)
	}

	return dto.ChatResponse{Reply: reply}, nil
}

func fallbackFor(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "wifi") || strings.Contains(q, "wi-fi") || strings.Contains(q, "internet"):
		return fallbackWiFi
	case strings.Contains(q, "parking") || strings.Contains(q, "park"):
		return fallbackParking
	case strings.Contains(q, "airport"):
		return fallbackAirport
	default:
		return fallbackGeneric
	}
}
