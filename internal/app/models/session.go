package models

import "time"

type Session struct {
	SessionID    string    `json:"session_id"`
	HospitalID   string    `json:"hospital_id"`
	Email        string    `json:"email"`
	HospitalName string    `json:"hospital_name"`
	ExpiresAt    time.Time `json:"expires_at"`
}
