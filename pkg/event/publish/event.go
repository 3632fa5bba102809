package publish

import "time"

// DomainEvent는 실행 중 발행되는 도메인 이벤트의 최소 계약입니다.
// Name은 브로커의 토픽/라우팅 키 결정에 사용됩니다.
type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}
