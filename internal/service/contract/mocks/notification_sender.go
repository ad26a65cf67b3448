package mocks

import (
	"context"

	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockNotificationSender는 contract.NotificationSender 인터페이스의 Mock 구현체입니다.
// 알림 발송 요청이 기대한 채널과 내용으로 전달되는지 검증하는 데 사용됩니다.
type MockNotificationSender struct {
	mock.Mock
}

// Notify 지정된 채널로 알림을 발송합니다.
func (m *MockNotificationSender) Notify(ctx context.Context, notification contract.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// NotifyDefault 기본 채널로 알림을 발송합니다.
func (m *MockNotificationSender) NotifyDefault(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// NotifyDefaultWithError 기본 채널로 오류 알림을 발송합니다.
func (m *MockNotificationSender) NotifyDefaultWithError(ctx context.Context, message string, cause error) error {
	args := m.Called(ctx, message, cause)
	return args.Error(0)
}

// NotifyBlocks 사전에 구성된 Block Kit 블록 배열(JSON)을 지정된 채널로 발송합니다.
func (m *MockNotificationSender) NotifyBlocks(ctx context.Context, channelID contract.ChannelID, blocksJSON []byte) error {
	args := m.Called(ctx, channelID, blocksJSON)
	return args.Error(0)
}

var _ contract.NotificationSender = (*MockNotificationSender)(nil)

// MockNotificationHealthChecker는 contract.NotificationHealthChecker 인터페이스의 Mock 구현체입니다.
type MockNotificationHealthChecker struct {
	mock.Mock
}

// Health 서비스가 정상적으로 실행 중인지 확인합니다.
func (m *MockNotificationHealthChecker) Health() error {
	args := m.Called()
	return args.Error(0)
}

var _ contract.NotificationHealthChecker = (*MockNotificationHealthChecker)(nil)
