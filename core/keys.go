package core

// ExecutionContext 저장소에서 프레임워크가 예약한 key 목록입니다.
const (
	StoreKeyParams         = "tether.params"
	StoreKeyPathKeys       = "tether.path_keys"
	StoreKeyResponseWriter = "tether.response_writer"
	StoreKeyConnID         = "tether.ws.conn_id"
)
