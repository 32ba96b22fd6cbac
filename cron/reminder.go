package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookwell/config"
	"bookwell/models"
	"bookwell/services/availability"
	"bookwell/utils"
)

const TypeReminderSend = "reminder:send"

// Reminders fire this long before the appointment starts.
const reminderLead = time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// ScheduleForCommitment enqueues reminders for both parties an hour before
// the appointment. Appointments starting sooner than the lead get no
// reminder.
func (s *ReminderScheduler) ScheduleForCommitment(ctx context.Context, cm *models.Commitment) error {
	day, err := time.Parse(availability.DateLayout, cm.Date)
	if err != nil {
		return fmt.Errorf("invalid commitment date %q: %w", cm.Date, err)
	}
	startAt := day.Add(time.Duration(cm.Start) * time.Minute)
	fireAt := startAt.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	body := fmt.Sprintf("Appointment on %s at %s", cm.Date, availability.ToHHMM(cm.Start))
	payloads := []models.ReminderPayload{
		{CommitmentID: cm.ID, Target: "consumer", TargetID: cm.ConsumerID, Title: "Upcoming appointment", Body: body, FireDate: fireAt.Format(time.RFC3339)},
		{CommitmentID: cm.ID, Target: "provider", TargetID: cm.ProviderID, Title: "Upcoming appointment", Body: body, FireDate: fireAt.Format(time.RFC3339)},
	}
	for _, p := range payloads {
		b, err := json.Marshal(p)
		if err != nil {
			return err
		}
		task := asynq.NewTask(TypeReminderSend, b)
		if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
			return fmt.Errorf("failed to enqueue reminder: %w", err)
		}
	}
	return nil
}

// InitReminderWorker runs the async reminder worker in the background.
// Delivery is a structured log entry; push transports can hang off the
// same handler later.
func InitReminderWorker() {
	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(_ context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("reminder due",
		zap.String("commitmentId", p.CommitmentID),
		zap.String("target", p.Target),
		zap.String("targetId", p.TargetID),
		zap.String("title", p.Title),
		zap.String("body", p.Body))
	return nil
}
