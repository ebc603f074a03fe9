package reminders

import (
	"context"
	"encoding/base64"
	"fmt"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	reminderUsecaseInstance contracts.ReminderUsecase
	onceReminderUsecase     sync.Once
)

type reminderUsecase struct {
	PurchaseRepository   contracts.PurchaseRepository
	PatientRepository    contracts.PatientRepository
	MedicationRepository contracts.MedicationRepository
	HospitalRepository   contracts.HospitalRepository
	MinioStorage         contracts.Storage
	MailerService        contracts.MailerService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewReminderUsecase(
	purchaseRepository contracts.PurchaseRepository,
	patientRepository contracts.PatientRepository,
	medicationRepository contracts.MedicationRepository,
	hospitalRepository contracts.HospitalRepository,
	minioStorage contracts.Storage,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReminderUsecase {
	onceReminderUsecase.Do(func() {
		reminderUsecaseInstance = &reminderUsecase{
			PurchaseRepository:   purchaseRepository,
			PatientRepository:    patientRepository,
			MedicationRepository: medicationRepository,
			HospitalRepository:   hospitalRepository,
			MinioStorage:         minioStorage,
			MailerService:        mailerService,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return reminderUsecaseInstance
}

func (uc *reminderUsecase) BuildCalendar(ctx context.Context, hospitalID, purchaseID string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reminderUsecase.BuildCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPurchaseIDKey, purchaseID),
	)

	purchase, err := uc.findOwnedPurchase(ctx, hospitalID, purchaseID)
	if err != nil {
		return nil, err
	}

	events, err := uc.expandPurchase(ctx, purchase, time.Now())
	if err != nil {
		return nil, err
	}

	return EncodeCalendar(events)
}

func (uc *reminderUsecase) SendReminderEmail(ctx context.Context, hospitalID string, request *requests.SendReminderEmail) (*responses.ReminderEmail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reminderUsecase.SendReminderEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPurchaseIDKey, request.PurchaseID),
	)

	purchase, err := uc.findOwnedPurchase(ctx, hospitalID, request.PurchaseID)
	if err != nil {
		return nil, err
	}

	events, err := uc.expandPurchase(ctx, purchase, time.Now())
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		uc.Log.Info("reminderUsecase.SendReminderEmail no events to send",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPurchaseIDKey, request.PurchaseID),
		)
		return &responses.ReminderEmail{
			PurchaseID: request.PurchaseID,
			EventCount: 0,
			EmailSent:  false,
		}, nil
	}

	payload, err := EncodeCalendar(events)
	if err != nil {
		return nil, err
	}

	objectName := constvars.CalendarObjectPrefix + request.PurchaseID + ".ics"
	if err := uc.MinioStorage.UploadBytes(ctx, payload, objectName, constvars.MIMETextCalendar); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, purchase.PatientID.Hex())
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	if patient.Email == "" {
		return nil, exceptions.ErrPatientHasNoEmail(nil)
	}

	hospital, err := uc.HospitalRepository.FindHospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}

	emailPayload := &requests.EmailPayload{
		Subject:               constvars.EmailMedicationReminderSubject,
		From:                  uc.InternalConfig.Mailer.EmailSender,
		To:                    []string{patient.Email},
		Body:                  fmt.Sprintf(constvars.EmailMedicationReminderBody, hospital.Name),
		AttachmentName:        constvars.CalendarAttachmentName,
		AttachmentContentType: constvars.MIMETextCalendar,
		AttachmentBase64:      base64.StdEncoding.EncodeToString(payload),
	}
	if err := uc.MailerService.SendWithAttachment(ctx, emailPayload); err != nil {
		return nil, err
	}

	uc.Log.Info("reminderUsecase.SendReminderEmail email sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPurchaseIDKey, request.PurchaseID),
		zap.Int(constvars.LoggingEventCountKey, len(events)),
	)

	return &responses.ReminderEmail{
		PurchaseID: request.PurchaseID,
		EventCount: len(events),
		EmailSent:  true,
	}, nil
}

func (uc *reminderUsecase) findOwnedPurchase(ctx context.Context, hospitalID, purchaseID string) (*models.Purchase, error) {
	purchase, err := uc.PurchaseRepository.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrPurchaseNotExist(nil)
	}
	return purchase, nil
}

// expandPurchase expands every line item of the purchase and merges the
// results into one ascending event list. A line item with no explicit start
// time anchors at now.
func (uc *reminderUsecase) expandPurchase(ctx context.Context, purchase *models.Purchase, now time.Time) ([]ReminderEvent, error) {
	var events []ReminderEvent
	for _, item := range purchase.Items {
		medication, err := uc.MedicationRepository.FindMedicationByID(ctx, item.MedicationID.Hex())
		if err != nil {
			return nil, err
		}
		if medication == nil {
			return nil, exceptions.ErrMedicationNotExist(nil)
		}

		anchor := now
		if item.StartTime != nil {
			anchor = *item.StartTime
		}

		sched := DosingSchedule{
			DrugName:        medication.DrugName,
			DoseDescription: medication.DoseDescription,
			Frequency:       medication.Frequency,
			Duration:        medication.Duration,
		}
		itemEvents, err := ExpandSchedule(sched, anchor, now)
		if err != nil {
			return nil, err
		}
		events = append(events, itemEvents...)
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events, nil
}
