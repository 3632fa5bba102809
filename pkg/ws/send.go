package ws

import "context"

type senderKeyType struct{}

var SenderKey = senderKeyType{}

// ConnID는 WebSocket 연결 식별자 주입용 타입입니다.
type ConnID string

type Sender interface {
	Send(messageType int, data []byte) error
}

// Send는 현재 실행 Context에 연결된 WebSocket 연결로 메시지를 전송합니다.
// WebSocket 실행이 아니면 아무것도 하지 않습니다.
func Send(ctx context.Context, messageType int, data []byte) error {
	sender, ok := ctx.Value(SenderKey).(Sender)
	if !ok || sender == nil {
		return nil
	}
	return sender.Send(messageType, data)
}
