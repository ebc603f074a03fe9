package constvars

const (
	EmailMedicationReminderSubject = "Your Medication Purchase and Reminders"
	EmailMedicationReminderBody    = "You have purchased medications from %s. Please find your medication reminder schedule attached; open it to add the reminders to your calendar."
)

const (
	EmailSendBasicEmailFormat     = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendWithAttachmentFormat = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: multipart/mixed; boundary=\"simple boundary\"\r\n\r\n--simple boundary\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n--simple boundary\r\nContent-Disposition: attachment; filename=\"%s\"\r\nContent-Type: %s\r\nContent-Transfer-Encoding: base64\r\n\r\n"
)

const (
	SMSMedicationReminderFormat = "Reminder: Hi %s, it's time to take your %s (%s). Stay on track for your health! If you've already taken it, please disregard this message. - HealthTrack"
)
