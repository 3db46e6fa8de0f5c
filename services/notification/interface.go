package notification

import (
	"context"

	doctorRepo "dentora/database/repository/doctor"
)

// NotificationService defines methods for sending FCM pushes around the
// booking lifecycle (confirmation, reminder).
type NotificationService interface {
	// SendPush sends a push to an explicit device token (patient devices
	// register their token with the booking request).
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
	// SendDoctorPush looks up the doctor's registered device and pushes.
	SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error
}

// NewDefaultNotificationService builds the production FCM implementation.
func NewDefaultNotificationService(doctors doctorRepo.DoctorRepository) NotificationService {
	return &DefaultNotificationService{doctors: doctors}
}
