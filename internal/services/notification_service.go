package services

import (
	"context"

	"go.uber.org/zap"

	"requestquote/pkg/telegram"
)

// NotificationServiceInterface delivers the best-effort admin notification
// about a new quote request. Implementations must never be load-bearing:
// the submission has already been persisted when they run.
type NotificationServiceInterface interface {
	NotifyAdmin(ctx context.Context, text string) error
}

type telegramNotificationService struct {
	client telegram.ServiceInterface
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotificationService sends admin notifications to a Telegram
// chat, which is where the shop staff already lives.
func NewTelegramNotificationService(client telegram.ServiceInterface, chatID int64, logger *zap.Logger) NotificationServiceInterface {
	return &telegramNotificationService{client: client, chatID: chatID, logger: logger}
}

func (s *telegramNotificationService) NotifyAdmin(ctx context.Context, text string) error {
	return s.client.SendMessage(ctx, s.chatID, text)
}

// mockNotificationService logs instead of sending. Used in development and
// whenever no notification channel is configured.
type mockNotificationService struct {
	logger *zap.Logger
}

func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

func (s *mockNotificationService) NotifyAdmin(ctx context.Context, text string) error {
	s.logger.Info("admin notification (mock)", zap.String("text", text))
	return nil
}
