package core

type ResponseWriter interface {
	SetHeader(key, value string)
	AddHeader(key, value string)
	// IsCommitted는 응답이 이미 기록되기 시작했는지를 나타냅니다.
	IsCommitted() bool
	WriteJSON(status int, value any) error
	WriteString(status int, value string) error
	WriteBytes(status int, data []byte) error
}
