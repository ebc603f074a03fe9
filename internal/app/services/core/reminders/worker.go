package reminders

import (
	"context"
	"fmt"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically scans recent purchases and publishes an SMS payload for
// every reminder event falling due within the configured window. A Redis
// leader lock keeps dispatch on a single instance, and a SetNX key per
// (purchase, event start) keeps every event to at most one SMS.
type Worker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	locker     contracts.LockerService
	redisRepo  contracts.RedisRepository
	purchases  contracts.PurchaseRepository
	patients   contracts.PatientRepository
	medication contracts.MedicationRepository
	sms        contracts.SMSService
	cron       *cron.Cron
	runCtx     context.Context
	cancel     context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	redisRepo contracts.RedisRepository,
	purchaseRepository contracts.PurchaseRepository,
	patientRepository contracts.PatientRepository,
	medicationRepository contracts.MedicationRepository,
	smsService contracts.SMSService,
) *Worker {
	return &Worker{
		log:        log,
		cfg:        cfg,
		locker:     lockerSvc,
		redisRepo:  redisRepo,
		purchases:  purchaseRepository,
		patients:   patientRepository,
		medication: medicationRepository,
		sms:        smsService,
	}
}

// Start schedules the periodic dispatch loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Worker.ReminderCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminders.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron loop and waits for an in-flight run.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderWorkerLock, ttl)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyReminderWorkerLock, token)

	now := time.Now()
	cutoff := now.AddDate(0, 0, -w.cfg.Worker.ReminderLookbackInDays)
	purchases, err := w.purchases.FindPurchasesCreatedAfter(ctx, cutoff)
	if err != nil {
		w.log.Warn("reminders.worker: purchase scan failed", zap.Error(err))
		return
	}

	window := time.Duration(w.cfg.Worker.ReminderWindowInMinutes) * time.Minute
	for _, purchase := range purchases {
		w.dispatchPurchase(ctx, &purchase, now, window)
	}
}

func (w *Worker) dispatchPurchase(ctx context.Context, purchase *models.Purchase, now time.Time, window time.Duration) {
	patient, err := w.patients.FindPatientByID(ctx, purchase.PatientID.Hex())
	if err != nil || patient == nil || patient.PhoneNumber == "" {
		return
	}

	for _, item := range purchase.Items {
		medication, err := w.medication.FindMedicationByID(ctx, item.MedicationID.Hex())
		if err != nil || medication == nil {
			continue
		}

		anchor := purchase.CreatedAt
		if item.StartTime != nil {
			anchor = *item.StartTime
		}

		sched := DosingSchedule{
			DrugName:        medication.DrugName,
			DoseDescription: medication.DoseDescription,
			Frequency:       medication.Frequency,
			Duration:        medication.Duration,
		}
		// Anchor doubles as now here: event times must stay identical across
		// runs or the dedupe keys stop matching.
		events, err := ExpandSchedule(sched, anchor, anchor)
		if err != nil {
			w.log.Warn("reminders.worker: schedule expansion failed",
				zap.String(constvars.LoggingPurchaseIDKey, purchase.ID.Hex()),
				zap.String(constvars.LoggingMedicationIDKey, medication.ID.Hex()),
				zap.Error(err),
			)
			continue
		}

		for _, event := range events {
			if event.Start.Before(now) || !event.Start.Before(now.Add(window)) {
				continue
			}

			dedupeKey := fmt.Sprintf(constvars.RedisKeyReminderSMSDedupeFormat, purchase.ID.Hex(), event.Start.Unix())
			acquired, err := w.redisRepo.TrySetNX(ctx, dedupeKey, 1, 2*window)
			if err != nil || !acquired {
				continue
			}

			payload := &requests.SMSPayload{
				PhoneNumber: patient.PhoneNumber,
				Message:     fmt.Sprintf(constvars.SMSMedicationReminderFormat, patient.FullName, medication.DrugName, medication.DoseDescription),
			}
			if err := w.sms.SendSMS(ctx, payload); err != nil {
				w.log.Warn("reminders.worker: sms publish failed",
					zap.String(constvars.LoggingPurchaseIDKey, purchase.ID.Hex()),
					zap.Error(err),
				)
			}
		}
	}
}
