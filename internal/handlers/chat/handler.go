package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"senateway/infras/otel"
	"senateway/internal/domains/chat/model/dto"
	"senateway/internal/domains/chat/service"
	"senateway/shared/constant"
	"senateway/shared/validator"
	"senateway/transport/http/response"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chat", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Chat)
	})
}

// Chat answers a single guest question.
// @Summary Ask the guesthouse assistant
// @Description Send one message to the assistant; conversations are not persisted.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Data[dto.ChatResponse] "Assistant reply"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat [post]
func (handler *Handler) Chat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reply, err := handler.service.Reply(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate chat reply")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Chat reply generated")

	response.WithJSON(writer, http.StatusOK, reply)
}
