package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thiagovm/barberflow/services/notifier-service/internal/storage"
	"github.com/thiagovm/barberflow/services/notifier-service/internal/webhook"
)

// Scanner runs one reminder pass: find due appointments, skip those
// already notified, deliver the rest. It is idempotent; the cron can
// fire as often as it likes.
type Scanner struct {
	appointments  *storage.AppointmentsRepository
	notifications *storage.NotificationsRepository
	sender        webhook.Sender
	logger        *slog.Logger
	now           func() time.Time
}

func NewScanner(appointments *storage.AppointmentsRepository, notifications *storage.NotificationsRepository, sender webhook.Sender, logger *slog.Logger) *Scanner {
	return &Scanner{
		appointments:  appointments,
		notifications: notifications,
		sender:        sender,
		logger:        logger,
		now:           time.Now,
	}
}

type Summary struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

func (s *Scanner) Scan(ctx context.Context) (Summary, error) {
	var sum Summary

	cfg, err := s.appointments.Settings(ctx)
	if err != nil {
		return sum, fmt.Errorf("load settings: %w", err)
	}
	if cfg.WebhookURL == "" {
		s.logger.Warn("reminder scan skipped (no webhook url configured)")
		return sum, nil
	}

	now := s.now().In(cfg.Location())
	dates := TargetDatesAt(now)
	nowMinute := MinuteOfDay(now)

	if cfg.NotifyReminder24h {
		due, err := s.appointments.ListActiveByDate(ctx, dates.Tomorrow)
		if err != nil {
			return sum, fmt.Errorf("list tomorrow: %w", err)
		}
		s.deliver(ctx, cfg, due, KindReminder24h, &sum)
	}

	if cfg.NotifyReminder2h {
		today, err := s.appointments.ListActiveByDate(ctx, dates.Today)
		if err != nil {
			return sum, fmt.Errorf("list today: %w", err)
		}
		var due []storage.DueAppointment
		for _, a := range today {
			if InTwoHourWindow(nowMinute, a.StartMinute) {
				due = append(due, a)
			}
		}
		s.deliver(ctx, cfg, due, KindReminder2h, &sum)
	}

	if cfg.NotifyFollowUp3d {
		due, err := s.appointments.ListCompletedAttendedByDate(ctx, dates.ThreeDaysAgo)
		if err != nil {
			return sum, fmt.Errorf("list 3d follow-ups: %w", err)
		}
		s.deliver(ctx, cfg, due, KindFollowUp3d, &sum)
	}

	if cfg.NotifyFollowUp21d {
		due, err := s.appointments.ListCompletedAttendedByDate(ctx, dates.TwentyOneDaysAgo)
		if err != nil {
			return sum, fmt.Errorf("list 21d follow-ups: %w", err)
		}
		s.deliver(ctx, cfg, due, KindFollowUp21d, &sum)
	}

	return sum, nil
}

func (s *Scanner) deliver(ctx context.Context, cfg storage.ShopSettings, due []storage.DueAppointment, kind string, sum *Summary) {
	for _, a := range due {
		sent, err := s.notifications.AlreadySent(ctx, a.ID, kind)
		if err != nil {
			s.logger.Error("dedupe check failed", "err", err, "appointment_id", a.ID, "kind", kind)
			sum.Failed++
			continue
		}
		if sent {
			sum.Skipped++
			continue
		}

		msg := webhook.Message{
			Kind:             kind,
			AppointmentID:    a.ID,
			ClientName:       a.ClientName,
			Phone:            a.Phone,
			ProfessionalName: a.ProfessionalName,
			Date:             a.Date,
			Start:            fmt.Sprintf("%02d:%02d", a.StartMinute/60, a.StartMinute%60),
		}
		if err := s.sender.Send(ctx, cfg.WebhookURL, msg); err != nil {
			s.logger.Error("webhook delivery failed", "err", err, "appointment_id", a.ID, "kind", kind)
			if recErr := s.notifications.Record(ctx, a.ID, kind, "failed", cfg.WebhookURL, err.Error()); recErr != nil {
				s.logger.Error("failed to record notification", "err", recErr)
			}
			sum.Failed++
			continue
		}
		if err := s.notifications.Record(ctx, a.ID, kind, "sent", cfg.WebhookURL, ""); err != nil {
			s.logger.Error("failed to record notification", "err", err, "appointment_id", a.ID)
		}
		sum.Sent++
	}
}
