package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/thiagovm/barberflow/libs/config"
	"github.com/thiagovm/barberflow/libs/db"
	"github.com/thiagovm/barberflow/libs/httpx"
	"github.com/thiagovm/barberflow/libs/kafkax"
	otelx "github.com/thiagovm/barberflow/libs/otel"
	"github.com/thiagovm/barberflow/libs/runtime"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/consumer"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/handlers"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/inbox"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/reminders"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/storage"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/webhook"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// appointmentEvent mirrors the payload the booking service writes to its
// outbox.
type appointmentEvent struct {
	AppointmentID    string   `json:"appointment_id"`
	ClientName       string   `json:"client_name"`
	Phone            string   `json:"phone"`
	ProfessionalName string   `json:"professional_name"`
	Date             string   `json:"date"`
	StartClock       string   `json:"start_clock"`
	Services         []string `json:"services"`
	TotalValue       float64  `json:"total_value"`
	CancelledBy      string   `json:"cancelled_by"`
}

func main() {
	service := config.String("SERVICE_NAME", "notifier-service")
	port, err := config.Port("PORT", "8084")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	appointments := storage.NewAppointmentsRepository(pool)
	notifications := storage.NewNotificationsRepository(pool)
	inboxRepo := inbox.NewRepository(pool)

	var sender webhook.Sender = webhook.NewHTTPSender(config.String("WEBHOOK_TOKEN", ""))
	if config.Bool("WEBHOOK_DISABLED", false) {
		sender = webhook.NewNoopSender()
		logger.Warn("webhook delivery disabled")
	}

	// Event-driven notifications: confirmation on booking, cancellation
	// notice on cancel.
	notify := func(ctx context.Context, kind string, evt appointmentEvent) error {
		cfg, err := appointments.Settings(ctx)
		if err != nil {
			return err
		}
		switch kind {
		case reminders.KindConfirmation:
			if !cfg.NotifyConfirmation {
				return nil
			}
		case reminders.KindCancellation:
			if !cfg.NotifyCancellation {
				return nil
			}
		}
		if cfg.WebhookURL == "" {
			logger.Warn("notification dropped (no webhook url configured)", "kind", kind)
			return nil
		}

		sent, err := notifications.AlreadySent(ctx, evt.AppointmentID, kind)
		if err != nil {
			return err
		}
		if sent {
			return nil
		}

		msg := webhook.Message{
			Kind:             kind,
			AppointmentID:    evt.AppointmentID,
			ClientName:       evt.ClientName,
			Phone:            evt.Phone,
			ProfessionalName: evt.ProfessionalName,
			Date:             evt.Date,
			Start:            evt.StartClock,
			Services:         evt.Services,
			TotalValue:       evt.TotalValue,
		}
		if err := sender.Send(ctx, cfg.WebhookURL, msg); err != nil {
			logger.Error("webhook delivery failed", "err", err, "kind", kind, "appointment_id", evt.AppointmentID)
			return notifications.Record(ctx, evt.AppointmentID, kind, "failed", cfg.WebhookURL, err.Error())
		}
		return notifications.Record(ctx, evt.AppointmentID, kind, "sent", cfg.WebhookURL, "")
	}

	startConsumer := func(topic, kind string) {
		c := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "notifier-service"),
			Topic:   topic,
		}, func(ctx context.Context, msg kafka.Message) error {
			var evt appointmentEvent
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
				return nil
			}
			if evt.AppointmentID == "" || evt.Phone == "" {
				logger.Error("missing required event fields", "topic", msg.Topic)
				return nil
			}
			return notify(ctx, kind, evt)
		})
		go c.Run(ctx)
	}
	startConsumer(config.String("KAFKA_TOPIC_CREATED", "booking.appointment.created.v1"), reminders.KindConfirmation)
	startConsumer(config.String("KAFKA_TOPIC_CANCELLED", "booking.appointment.cancelled.v1"), reminders.KindCancellation)

	scanner := reminders.NewScanner(appointments, notifications, sender, logger)
	cronHandler := handlers.NewCronHandler(scanner, config.String("CRON_SECRET", ""), logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/internal/cron/reminders", cronHandler.Reminders)

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "notifier")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
