// Package service 애플리케이션을 구성하는 장기 실행 서비스들의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 애플리케이션에서 실행되는 장기 실행 서비스의 공통 인터페이스입니다.
//
// 모든 서비스(Notification, Scheduler, API)는 이 인터페이스를 구현하며,
// 애플리케이션 시작 시 Start가 호출되고 serviceStopCtx가 취소되면 스스로 종료합니다.
type Service interface {
	// Start 서비스를 시작합니다.
	//
	// 매개변수:
	//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
	//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
	//
	// 반환값:
	//   - error: 서비스 초기화에 실패한 경우 에러 반환
	//
	// 구현 계약:
	//   - 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행합니다.
	//   - 구현체는 초기화 실패(에러 반환) 시에도 serviceStopWG.Done()을 보장해야 합니다.
	//   - 정상 시작된 경우 serviceStopCtx 취소를 감지하여 종료를 완료한 뒤 Done()을 호출합니다.
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
