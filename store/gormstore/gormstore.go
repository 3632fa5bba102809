/*
Package gormstore는 GORM 기반 model.Source 구현입니다.

기본 키 단건 조회만 담당하며, 레코드 부재(ErrRecordNotFound)는 에러가
아니라 (nil, false, nil)로 변환합니다. 저장소의 트랜잭션/일관성은 전적으로
GORM과 하위 드라이버의 책임입니다.
*/
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Source[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Source[T] {
	if db == nil {
		panic("gormstore: db는 nil일 수 없습니다")
	}
	return &Source[T]{db: db}
}

func (s *Source[T]) FindByID(ctx context.Context, id string) (any, bool, error) {
	var out T

	// 요청 Context를 붙여 취소/타임아웃이 쿼리까지 전파되게 한다.
	err := s.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &out, true, nil
}
