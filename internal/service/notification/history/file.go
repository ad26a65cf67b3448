// Package history 채널별 알림 발송 이력을 JSON 파일로 저장하는 저장소를 제공합니다.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/darkkaiser/slack-notify-server/pkg/concurrency"
	applog "github.com/darkkaiser/slack-notify-server/pkg/log"
)

// component Notification 서비스의 발송 이력 저장소 로깅용 컴포넌트 이름
const component = "notification.history"

// defaultDataDirectory 발송 이력을 저장할 기본 디렉토리 이름입니다.
const defaultDataDirectory = "data"

// defaultMaxRecords 채널당 보관하는 발송 이력의 기본 최대 개수입니다.
const defaultMaxRecords = 100

// tempFilePattern 임시 파일 저장 시 사용되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "delivery-history-*.tmp"

// fileDeliveryHistoryStore 파일 시스템을 기반으로 발송 이력을 저장하는 저장소 구현체입니다.
//
// [파일 구조]
//   - channel-{channelID}-{hash}.json: 채널별 발송 이력이 최신순 JSON 배열로 저장됩니다.
//   - delivery-history-*.tmp: 파일 저장 중 생성되는 임시 파일입니다.
type fileDeliveryHistoryStore struct {
	baseDir string

	// maxRecords 채널당 보관할 최대 이력 개수입니다. 초과분은 오래된 것부터 삭제됩니다.
	maxRecords int

	// locks 동일한 파일에 대한 동시 읽기-수정-쓰기를 직렬화하기 위한 파일별 뮤텍스입니다.
	// 파일 경로를 키로 사용하여 각 파일마다 독립적인 락을 관리합니다.
	locks *concurrency.KeyedMutex[string]
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.DeliveryHistoryStore = (*fileDeliveryHistoryStore)(nil)

// NewFileDeliveryHistoryStore 파일 시스템 기반의 발송 이력 저장소를 생성합니다.
//
// 초기화 과정에서 저장 디렉토리를 생성하고, 이전 실행에서 남은 임시 파일을 정리합니다.
//
// 매개변수:
//   - dir: 이력 파일을 저장할 디렉토리 경로
//     빈 문자열("")을 전달하면 기본 디렉토리("data")를 사용합니다.
//     상대 경로를 전달하면 절대 경로로 자동 변환됩니다.
//   - maxRecords: 채널당 보관할 최대 이력 개수 (0 이하이면 기본값 100 사용)
//
// 반환값:
//   - contract.DeliveryHistoryStore: 생성된 저장소 인터페이스
//   - error: 디렉토리 생성 실패 또는 권한 문제 발생 시 에러 반환
func NewFileDeliveryHistoryStore(dir string, maxRecords int) (contract.DeliveryHistoryStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}
	if maxRecords <= 0 {
		maxRecords = defaultMaxRecords
	}

	// 상대 경로를 절대 경로로 변환하여 경로 일관성을 보장합니다.
	// 이후 모든 파일 작업은 이 절대 경로를 기준으로 수행됩니다.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrAbsPathConversionFailed(err)
	}

	// 저장소 초기화 시점에 디렉토리 생성 및 접근 권한을 미리 확인합니다.
	// 이를 통해 나중에 Append 작업 시 발생할 수 있는 에러를 조기에 발견할 수 있습니다.
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &fileDeliveryHistoryStore{
		baseDir: absDir,

		maxRecords: maxRecords,

		locks: concurrency.NewKeyedMutex[string](),
	}

	// 백그라운드에서 이전 실행 시 남은 오래된 임시 파일을 정리합니다.
	// 서버 시작 속도에 영향을 주지 않도록 비동기로 수행하며,
	// 정리 작업 실패가 서버 전체에 영향을 주지 않도록 패닉을 복구합니다.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"baseDir": s.baseDir,
					"panic":   r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles()
	}()

	return s, nil
}

// cleanupStaleTempFiles 이전 실행에서 남겨진 오래된 임시 파일을 정리합니다.
//
// 비정상 종료(크래시, 강제 종료 등)로 인해 남겨진 임시 파일들을 정리하며,
// 저장소 초기화 시 백그라운드 고루틴에서 비동기로 실행됩니다.
func (s *fileDeliveryHistoryStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	// 삭제 기준 시간: 현재 시간으로부터 1시간 이전
	// 이 시간보다 오래된 파일만 삭제하여 현재 사용 중인 파일을 보호합니다.
	threshold := time.Now().Add(-1 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, _ := filepath.Match(tempFilePattern, name)
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		// 최근 1시간 이내에 수정된 파일은 다른 고루틴이 사용 중일 수 있으므로 삭제하지 않습니다.
		if info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}

// Append 발송 이력 1건을 해당 채널의 이력 파일에 추가합니다.
//
// [동시성 제어]
// 기존 이력 읽기 → 새 이력 추가 → 파일 쓰기가 하나의 단위로 수행되어야 하므로,
// 파일별 Lock을 읽기-수정-쓰기 전 구간에 걸쳐 유지합니다.
//
// [보관 정책]
// 이력은 최신순으로 저장되며, maxRecords를 초과하는 오래된 이력은 삭제됩니다.
func (s *fileDeliveryHistoryStore) Append(channelID contract.ChannelID, record contract.DeliveryRecord) error {
	filename, err := s.resolveSafePath(channelID)
	if err != nil {
		return err
	}

	// Windows 등 대소문자를 구분하지 않는 파일 시스템을 위해 Lock 키는 소문자로 정규화합니다.
	return s.locks.WithLock(strings.ToLower(filename), func() error {
		records, err := s.readRecords(filename)
		if err != nil {
			return err
		}

		// 최신 이력이 배열의 앞에 오도록 추가하고, 보관 한도를 초과하면 오래된 이력을 버립니다.
		records = append([]contract.DeliveryRecord{record}, records...)
		if len(records) > s.maxRecords {
			records = records[:s.maxRecords]
		}

		data, err := json.MarshalIndent(records, "", "\t")
		if err != nil {
			return NewErrJSONMarshalFailed(err)
		}

		return s.writeAtomic(filename, data)
	})
}

// Load 지정된 채널의 저장된 발송 이력을 최신순으로 불러옵니다.
//
// [동시성 제어]
// 읽기 작업에도 Lock을 적용하여 쓰기 중인 파일을 읽는 것을 방지합니다.
//
// 저장된 이력이 없는 경우 contract.ErrDeliveryHistoryNotFound를 반환합니다.
func (s *fileDeliveryHistoryStore) Load(channelID contract.ChannelID) ([]contract.DeliveryRecord, error) {
	filename, err := s.resolveSafePath(channelID)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			// 파일이 아직 생성되지 않은 경우 (발송 이력 없음)
			if os.IsNotExist(readErr) {
				return contract.ErrDeliveryHistoryNotFound
			}

			return NewErrHistoryReadFailed(readErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// JSON 역직렬화는 Lock 보유 시간을 최소화하기 위해 Lock 해제 후 수행합니다.
	var records []contract.DeliveryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, NewErrJSONUnmarshalFailed(err)
	}

	return records, nil
}

// readRecords 이력 파일을 읽어 기존 이력을 반환합니다. 파일이 없으면 빈 슬라이스를 반환합니다.
//
// 호출자가 이미 해당 파일의 Lock을 보유한 상태에서 호출해야 합니다.
func (s *fileDeliveryHistoryStore) readRecords(filename string) ([]contract.DeliveryRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, NewErrHistoryReadFailed(err)
	}

	var records []contract.DeliveryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// 손상된 이력 파일은 복구 대상이 아니라 운영 참고용 데이터이므로,
		// 경고를 남기고 새 이력으로 대체합니다.
		applog.WithComponentAndFields(component, applog.Fields{
			"file":  filename,
			"error": err,
		}).Warn("발송 이력 파일이 손상되어 새 이력으로 대체합니다")

		return nil, nil
	}

	return records, nil
}

// resolveSafePath 채널 ID를 사용하여 안전하게 검증된 파일 경로를 생성합니다.
//
// 이 함수는 단순히 경로를 조합하는 것을 넘어, 생성된 경로가 허용된 기본 디렉토리를
// 벗어나지 않는지 엄격하게 검증하여 Path Traversal 공격을 방어합니다.
//
// 반환값:
//   - string: 검증이 완료된 안전한 절대 경로
//   - error: 보안 정책 위반 또는 경로 생성 실패 시 에러
func (s *fileDeliveryHistoryStore) resolveSafePath(channelID contract.ChannelID) (string, error) {
	filename := generateFilename(channelID)

	// 생성자에서 이미 절대 경로로 변환되었으므로 신뢰할 수 있는 기준 경로입니다.
	basePath := s.baseDir

	// filepath.Join과 Clean을 통해 경로 구분자를 통일하고 불필요한 요소(..)를 정리합니다.
	fullPath := filepath.Join(basePath, filename)
	cleanPath := filepath.Clean(fullPath)

	// [보안 검증 전략]
	// filepath.Rel을 사용하여 BaseDir 기준의 상대 경로를 계산하여 검증합니다.
	// 상대 경로가 ".."으로 시작하면 상위 디렉토리로 이탈한 것이므로 차단하며,
	// 단순 접두사(Prefix) 비교의 취약점(Sibling Directory Attack)도 함께 방지합니다.
	rel, err := filepath.Rel(basePath, cleanPath)
	if err != nil {
		return "", NewErrPathResolutionFailed(err)
	}

	if strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": channelID,
			"filename":   filename,
			"base_dir":   s.baseDir,
			"path":       cleanPath,
			"rel_path":   rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 데이터를 파일에 원자적으로 저장합니다.
//
// [원자적 쓰기 전략]
// 파일 저장 중 시스템 장애(전원 차단, 프로세스 종료)가 발생해도 데이터 무결성을 보장하기 위해
// "임시 파일 쓰기 → 동기화 → 원자적 이름 변경" 3단계 전략을 사용합니다:
//
// 1. 임시 파일 생성 및 쓰기
//   - 같은 디렉토리 내에 임시 파일을 생성 (크로스 파일시스템 rename 방지)
//
// 2. 디스크 동기화 (fsync)
//   - 운영체제 버퍼 캐시에만 있는 상태에서 전원이 차단되는 것을 방지
//
// 3. 원자적 이름 변경 (Atomic Rename)
//   - os.Rename은 POSIX 및 현대 Windows(Go 1.5+)에서 원자적 덮어쓰기를 보장
func (s *fileDeliveryHistoryStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	// 1단계: 디렉토리 준비
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewErrDirectoryCreationFailed(err)
	}

	// 2단계: 임시 파일 생성
	// 같은 디렉토리 내에 생성해야 rename이 원자적으로 동작합니다.
	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrTempFileCreationFailed(err)
	}
	tmpPath := tmpFile.Name()

	// [임시 파일 안전 정리: Windows 호환성]
	// Windows에서는 파일이 열려있는 상태에서는 삭제(os.Remove)가 불가능하므로,
	// 반드시 '파일 닫기(Close)'가 '파일 삭제(Remove)'보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	// 3단계: 데이터 쓰기
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return NewErrFileWriteFailed(err)
	}

	// 4단계: 파일 내용 동기화 (fsync)
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return NewErrFileSyncFailed(err)
	}

	// 5단계: 파일 닫기
	// Windows에서는 파일이 열려 있으면 rename이 실패하므로 반드시 닫아야 합니다.
	if err := tmpFile.Close(); err != nil {
		return NewErrFileCloseFailed(err)
	}

	// 6단계: 이름 변경
	if err := s.renameWithRetry(tmpPath, filename); err != nil {
		return NewErrFileRenameFailed(err)
	}

	// 7단계: 디렉토리 엔트리 동기화 (Directory fsync)
	// 파일명 변경 사항을 디스크에 확실히 기록하기 위해 부모 디렉토리를 fsync합니다.
	// 실패해도 치명적이지 않으므로 에러를 무시합니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 파일 이름 변경을 재시도 로직과 함께 수행합니다.
//
// Windows 개발 환경에서는 바이러스 백신, 파일 인덱서 등이 파일을 일시적으로 잠글 수 있어
// os.Rename이 실패할 수 있으므로, 짧은 대기 후 재시도하여 일시적인 잠금 문제를 우회합니다.
// Linux에서는 거의 발생하지 않지만 해가 되지 않으며(최대 50ms 지연), 최종 실패 시
// 에러를 반환하여 문제를 감지할 수 있습니다.
func (s *fileDeliveryHistoryStore) renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}
