package mocks

import (
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockDeliveryHistoryProvider는 contract.DeliveryHistoryProvider 인터페이스의 Mock 구현체입니다.
type MockDeliveryHistoryProvider struct {
	mock.Mock
}

// History 지정된 채널의 발송 이력을 반환하는 Mock 메서드입니다.
func (m *MockDeliveryHistoryProvider) History(channelID contract.ChannelID) ([]contract.DeliveryRecord, error) {
	args := m.Called(channelID)

	var records []contract.DeliveryRecord
	if v := args.Get(0); v != nil {
		records = v.([]contract.DeliveryRecord)
	}
	return records, args.Error(1)
}

// MockDeliveryHistoryStore는 contract.DeliveryHistoryStore 인터페이스의 Mock 구현체입니다.
type MockDeliveryHistoryStore struct {
	mock.Mock
}

// Append 발송 이력을 기록하는 Mock 메서드입니다.
func (m *MockDeliveryHistoryStore) Append(channelID contract.ChannelID, record contract.DeliveryRecord) error {
	args := m.Called(channelID, record)
	return args.Error(0)
}

// Load 발송 이력을 조회하는 Mock 메서드입니다.
func (m *MockDeliveryHistoryStore) Load(channelID contract.ChannelID) ([]contract.DeliveryRecord, error) {
	args := m.Called(channelID)

	var records []contract.DeliveryRecord
	if v := args.Get(0); v != nil {
		records = v.([]contract.DeliveryRecord)
	}
	return records, args.Error(1)
}

var (
	_ contract.DeliveryHistoryProvider = (*MockDeliveryHistoryProvider)(nil)
	_ contract.DeliveryHistoryStore    = (*MockDeliveryHistoryStore)(nil)
)
