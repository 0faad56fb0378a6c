package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	geminiMocks "senateway/infras/gemini/mocks"
	"senateway/infras/otel/mocks"
	"senateway/internal/domains/chat/model/dto"
	"senateway/internal/domains/chat/service"
)

func TestChatService_Reply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGemini := geminiMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockGemini, mockOtel)

	tests := []struct {
		name      string
		message   string
		setupMock func()
		wantReply string
	}{
		{
			name:    "model answer is returned verbatim",
			message: "Do you have a pool?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (string, error) {
						// The guesthouse facts precede the guest question.
						assert.True(t, strings.HasSuffix(prompt, "Do you have a pool?"))
						assert.Contains(t, prompt, "SenateWay Guesthouse")

						return "Yes, we have a swimming pool.", nil
					})
			},
			wantReply: "Yes, we have a swimming pool.",
		},
		{
			name:    "model error degrades to the offline message",
			message: "Do you have a pool?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", errors.New("gemini unavailable"))
			},
			wantReply: "I'm having trouble connecting right now. Please try again in a moment, or reach us directly on +27 123 456 789 or info@senateway.co.za.",
		},
		{
			name:    "empty completion about wifi",
			message: "Is there WiFi in the rooms?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", nil)
			},
			wantReply: "Yes, free WiFi is available throughout the property.",
		},
		{
			name:    "empty completion about parking",
			message: "Where can I park my car?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", nil)
			},
			wantReply: "Yes, we offer free private parking for guests.",
		},
		{
			name:    "empty completion about the airport",
			message: "How far is the airport?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", nil)
			},
			wantReply: "We're about 6 km from Kimberley Airport (around 10 minutes by car).",
		},
		{
			name:    "empty completion with no keyword match",
			message: "Can I bring my cat?",
			setupMock: func() {
				mockGemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", nil)
			},
			wantReply: "I'm sorry, I don't have an answer for that right now. Please call us on +27 123 456 789 or info@senateway.co.za and we'll gladly help.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Reply(context.Background(), dto.ChatRequest{Message: tt.message})

			// A guest-facing chat never errors.
			assert.NoError(t, err)
			assert.Equal(t, tt.wantReply, res.Reply)
		})
	}
}
