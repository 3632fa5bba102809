package consumer

import "context"

// Message는 브로커에서 읽은 메시지 하나입니다.
type Message struct {
	EventName string
	Payload   []byte

	// 브로커별 확인/거부 동작. nil이면 no-op.
	AckFunc  func() error
	NackFunc func() error
}

func (m Message) Ack() error {
	if m.AckFunc == nil {
		return nil
	}
	return m.AckFunc()
}

func (m Message) Nack() error {
	if m.NackFunc == nil {
		return nil
	}
	return m.NackFunc()
}

// Reader는 브로커에서 메시지를 하나씩 읽어오는 계약입니다.
type Reader interface {
	Read(ctx context.Context) (Message, error)
	Close() error
}
