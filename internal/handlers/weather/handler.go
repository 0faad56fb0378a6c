package weather

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"senateway/infras/accuweather"
	"senateway/infras/otel"
	"senateway/shared/constant"
	"senateway/shared/failure"
	"senateway/transport/http/response"
)

const requestParamEndpoint = "endpoint"

type Handler struct {
	client accuweather.Client
	otel   otel.Otel
}

func New(client accuweather.Client, otel otel.Otel) Handler {
	return Handler{
		client: client,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/weather", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeather)
	})
}

// GetWeather proxies a request to the AccuWeather data service. The upstream
// body and status are passed through verbatim so callers see exactly what
// AccuWeather returned; only the API key is held server side.
// @Summary Proxy a weather request
// @Description Forward the given endpoint and query to AccuWeather with the server-held API key.
// @Tags Weather
// @Accept json
// @Produce json
// @Param endpoint query string true "AccuWeather endpoint path"
// @Success 200 {object} any "Upstream AccuWeather response"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/weather [get]
func (handler *Handler) GetWeather(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeather")
	defer scope.End()

	query := request.URL.Query()

	endpoint := query.Get(requestParamEndpoint)
	if endpoint == constant.Empty {
		scope.TraceError(nil)
		log.Error().Msg("weather request missing endpoint parameter")

		response.WithError(writer, failure.BadRequestFromString("endpoint query parameter is required"))

		return
	}

	query.Del(requestParamEndpoint)

	result, err := handler.client.Fetch(ctx, endpoint, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch weather data")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	scope.AddEvent("Weather data fetched from " + endpoint)

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(result.StatusCode)

	if _, err := writer.Write(result.Body); err != nil {
		log.Error().Err(err).Msg("failed to write weather response")
	}
}
