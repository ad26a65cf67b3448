package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/darkkaiser/slack-notify-server/internal/service/api/constants"
	"github.com/darkkaiser/slack-notify-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/darkkaiser/slack-notify-server/internal/service/contract/mocks"
	"github.com/darkkaiser/slack-notify-server/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_DeliveryHistoryHandler(t *testing.T) {
	sentAt := time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name            string
		channel         string
		records         []contract.DeliveryRecord // History가 반환할 이력
		historyErr      error                     // History가 반환할 에러
		wantErrStatus   int                       // 0이면 성공(200 OK) 기대
		wantMsgContains string
	}{
		{
			name:    "성공: 발송 이력 조회",
			channel: "deploy-alerts",
			records: []contract.DeliveryRecord{
				{Title: "배포 알림", Message: "v1.2.3 배포 완료", Succeeded: true, StatusCode: 200, SentAt: sentAt},
				{Message: "디스크 사용량 경고", ErrorOccurred: true, Succeeded: false, SentAt: sentAt.Add(-time.Hour)},
			},
		},
		{
			name:    "성공: 이력이 없는 채널은 빈 목록 반환",
			channel: "alert-channel",
			records: []contract.DeliveryRecord{},
		},
		{
			name:            "실패: 등록되지 않은 채널",
			channel:         "ghost-channel",
			historyErr:      notification.ErrChannelNotFound,
			wantErrStatus:   http.StatusNotFound,
			wantMsgContains: "등록되지 않은 알림 채널",
		},
		{
			name:            "실패: 서비스 중지됨",
			channel:         "deploy-alerts",
			historyErr:      notification.ErrServiceNotRunning,
			wantErrStatus:   http.StatusServiceUnavailable,
			wantMsgContains: "점검 중이거나 종료",
		},
		{
			name:            "실패: 이력 저장소 오류",
			channel:         "deploy-alerts",
			historyErr:      errors.New("이력 파일 읽기 실패"),
			wantErrStatus:   http.StatusInternalServerError,
			wantMsgContains: "일시적으로 사용할 수 없습니다",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mocks.MockDeliveryHistoryProvider)
			provider.On("History", contract.ChannelID(tt.channel)).Return(tt.records, tt.historyErr)

			h := NewHandler(testAppConfig(), new(mocks.MockNotificationSender), provider)
			c, rec := newAuthenticatedContext(http.MethodGet, "/api/v1/notifications/history/"+tt.channel, "", testApplication())
			c.SetParamNames(constants.PathParamChannel)
			c.SetParamValues(tt.channel)

			err := h.DeliveryHistoryHandler(c)

			if tt.wantErrStatus != 0 {
				assertHTTPError(t, err, tt.wantErrStatus, tt.wantMsgContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp response.HistoryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.channel, resp.Channel)
			assert.Equal(t, len(tt.records), resp.Total)
			require.Len(t, resp.Records, len(tt.records))
			for i, record := range tt.records {
				assert.Equal(t, record.Title, resp.Records[i].Title)
				assert.Equal(t, record.Message, resp.Records[i].Message)
				assert.Equal(t, record.Succeeded, resp.Records[i].Succeeded)
				assert.True(t, record.SentAt.Equal(resp.Records[i].SentAt), "SentAt이 보존되어야 합니다")
			}

			provider.AssertExpectations(t)
		})
	}
}
