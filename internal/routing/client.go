package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// LatLng - точка маршрута
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Route - маршрут и оценка времени прибытия от внешнего роутинг-сервиса.
// Данные справочные: назначение и ранжирование кандидатов от них не зависят.
type Route struct {
	Path       []LatLng `json:"path"`
	ETASeconds int      `json:"eta_seconds"`
}

// Client - клиент внешнего сервиса маршрутизации
type Client struct {
	http   *resty.Client
	logger *logrus.Logger
}

// NewClient создает клиент роутинг-сервиса. Пустой baseURL отключает
// обращения: GetRoute будет отвечать nil.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	var httpClient *resty.Client
	if baseURL != "" {
		httpClient = resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond)
	}
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

type routeResponse struct {
	Path       []LatLng `json:"path"`
	ETASeconds int      `json:"eta_seconds"`
}

// GetRoute запрашивает маршрут между двумя точками. Любой сбой
// роутинг-сервиса не считается ошибкой вызывающего: возвращается nil,
// интерфейс оператора просто остаётся без линии маршрута.
func (c *Client) GetRoute(ctx context.Context, origin, destination LatLng) *Route {
	if c.http == nil {
		return nil
	}

	var result routeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"from_lat": fmt.Sprintf("%f", origin.Latitude),
			"from_lon": fmt.Sprintf("%f", origin.Longitude),
			"to_lat":   fmt.Sprintf("%f", destination.Latitude),
			"to_lon":   fmt.Sprintf("%f", destination.Longitude),
		}).
		SetResult(&result).
		Get("/route")
	if err != nil {
		c.logger.WithError(err).Warn("Routing service request failed")
		return nil
	}
	if resp.StatusCode() != 200 {
		c.logger.WithField("status", resp.StatusCode()).Warn("Routing service returned non-OK status")
		return nil
	}

	return &Route{
		Path:       result.Path,
		ETASeconds: result.ETASeconds,
	}
}
