package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"senateway/infras/otel"
	"senateway/internal/domains/analytics/model/dto"
	"senateway/internal/domains/analytics/service"
	"senateway/shared/constant"
	"senateway/shared/validator"
	"senateway/transport/http/response"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Post("/events", handler.TrackEvent)
		routerGroup.Get("/", handler.GetSummary)
	})
}

// TrackEvent increments the counter for a site event.
// @Summary Track a site event
// @Description Increment the matching analytics counter; the X-Session-ID header deduplicates visitors for the total_users counter.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.TrackEventRequest true "Track Event Request"
// @Param X-Session-ID header string false "Opaque session identifier for visitor deduplication"
// @Success 202 {object} response.Message "Event tracked"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/events [post]
func (handler *Handler) TrackEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackEvent")
	defer scope.End()

	req := dto.TrackEventRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	sessionID := request.Header.Get(constant.RequestHeaderSessionID)

	if err := handler.service.Track(ctx, req, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track event")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Event tracked: " + req.Type)

	response.WithMessage(writer, http.StatusAccepted, "Event tracked")
}

// GetSummary returns the current counter values.
// @Summary Get the analytics summary
// @Description Retrieve the five site counters for the admin dashboard.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Analytics summary"
// @Failure 500 {object} response.Error
// @Router /v1/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Analytics summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
