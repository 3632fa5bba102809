package path

// Path 파라미터 주입용 타입입니다.
// 컨트롤러 메서드 시그니처에 선언된 순서대로 라우트의 :param에 매핑됩니다.

type Int struct {
	Value int64
}

type String struct {
	Value string
}
