// Полевой агент: симулирует устройство дежурного, периодически снимает
// координаты через сэмплер и отправляет их на сервер диспетчеризации.
// Полезен для нагрузочных прогонов и ручной проверки потока присутствия.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	v1 "github.com/shenikar/emergency_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/sampler"
	"github.com/shenikar/emergency_dispatch_system/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "dispatch server base URL")
	tenantID := flag.String("tenant", "tenant-demo", "tenant identifier")
	subjectID := flag.String("subject", "resp-1", "subject identifier")
	subjectKind := flag.String("kind", "RESPONDER", "subject kind: RESPONDER, ASSET or SOS_ORIGINATOR")
	apiKey := flag.String("api-key", os.Getenv("API_KEY"), "API key for the server")
	baseLat := flag.Float64("lat", 55.7558, "starting latitude")
	baseLon := flag.Float64("lon", 37.6173, "starting longitude")
	interval := flag.Duration("interval", 5*time.Second, "sampling interval")
	flag.Parse()

	log := logger.New(getEnv("LOG_LEVEL", "info"))

	highTimeout := getEnvAsDuration("HIGH_ACCURACY_TIMEOUT", 10*time.Second)
	lowTimeout := getEnvAsDuration("LOW_ACCURACY_TIMEOUT", 20*time.Second)

	source := newSimulatedSource(*baseLat, *baseLon, *interval)
	smp := sampler.NewSampler(source, highTimeout, lowTimeout, log)

	client := resty.New().
		SetBaseURL(*serverURL).
		SetTimeout(10 * time.Second).
		SetHeader("X-API-Key", *apiKey).
		SetHeader("X-Tenant-ID", *tenantID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Первое измерение запрашиваем одиночно: так проверяется и цепочка
	// high accuracy -> retry, и доступность сервера до запуска потока
	fix, err := smp.RequestSingleFix(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to obtain initial fix")
	}
	report(ctx, client, log, *subjectID, *subjectKind, fix)

	sub, err := smp.StartContinuous(ctx, func(fix models.GeoFix) {
		report(ctx, client, log, *subjectID, *subjectKind, fix)
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to start continuous sampling")
	}
	defer sub.Stop()

	log.WithField("subject_id", *subjectID).Info("Agent started, reporting fixes...")
	<-ctx.Done()
	log.Info("Agent stopped")
}

func report(ctx context.Context, client *resty.Client, log *logrus.Logger, subjectID, subjectKind string, fix models.GeoFix) {
	req := v1.ReportFixRequest{
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		Fix: v1.GeoFixDTO{
			Latitude:       fix.Latitude,
			Longitude:      fix.Longitude,
			AccuracyMeters: fix.AccuracyMeters,
			HeadingDeg:     fix.HeadingDeg,
			SpeedMps:       fix.SpeedMps,
			CapturedAt:     fix.CapturedAt,
			Source:         string(fix.Source),
		},
	}

	resp, err := client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/v1/presence/fix")
	if err != nil {
		log.WithError(err).Warn("Failed to report fix")
		return
	}
	if resp.IsError() {
		log.WithField("status", resp.StatusCode()).Warn("Server rejected fix report")
		return
	}
	log.WithFields(logrus.Fields{
		"latitude":  fix.Latitude,
		"longitude": fix.Longitude,
	}).Debug("Fix reported")
}

// simulatedSource - источник координат для симуляции: случайное блуждание
// вокруг стартовой точки. Высокая точность отвечает дольше, но с меньшей
// погрешностью, как настоящий GPS против сетевой геолокации.
type simulatedSource struct {
	rng      *rand.Rand
	lat, lon float64
	interval time.Duration
}

func newSimulatedSource(lat, lon float64, interval time.Duration) *simulatedSource {
	return &simulatedSource{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		lat:      lat,
		lon:      lon,
		interval: interval,
	}
}

func (s *simulatedSource) Once(ctx context.Context, highAccuracy bool) (models.GeoFix, error) {
	delay := 200 * time.Millisecond
	if highAccuracy {
		delay = 800 * time.Millisecond
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return models.GeoFix{}, ctx.Err()
	}
	return s.next(highAccuracy), nil
}

func (s *simulatedSource) Watch(ctx context.Context, highAccuracy bool, onFix func(models.GeoFix)) (func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				onFix(s.next(highAccuracy))
			}
		}
	}()
	return cancel, nil
}

// next смещает позицию на несколько метров в случайном направлении
func (s *simulatedSource) next(highAccuracy bool) models.GeoFix {
	s.lat += (s.rng.Float64() - 0.5) * 0.0002
	s.lon += (s.rng.Float64() - 0.5) * 0.0002

	accuracy := 50 + s.rng.Float64()*100
	source := models.FixSourceNetwork
	if highAccuracy {
		accuracy = 5 + s.rng.Float64()*15
		source = models.FixSourceGPS
	}
	speed := s.rng.Float64() * 3

	return models.GeoFix{
		Latitude:       s.lat,
		Longitude:      s.lon,
		AccuracyMeters: accuracy,
		SpeedMps:       &speed,
		CapturedAt:     time.Now().UTC(),
		Source:         source,
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
