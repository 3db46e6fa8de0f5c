package notification

import (
	"context"
	"fmt"

	doctorRepo "dentora/database/repository/doctor"
	"dentora/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production FCM implementation.
type DefaultNotificationService struct {
	doctors doctorRepo.DoctorRepository
}

func (s *DefaultNotificationService) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("SendPush: empty device token")
	}
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("push notifications disabled, dropping message", zap.String("title", title))
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("push sent", zap.String("response", response))
	return nil
}

func (s *DefaultNotificationService) SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error {
	d, err := s.doctors.GetByID(doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPush: could not find doctor %s: %w", doctorID, err)
	}
	if d.FCMToken == "" {
		return fmt.Errorf("SendDoctorPush: doctor %s has no registered device", doctorID)
	}
	return s.SendPush(ctx, d.FCMToken, title, body, data)
}
