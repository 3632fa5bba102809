/*
Package memstore는 메모리 기반 model.Source 구현입니다.
데모와 테스트처럼 실제 저장소가 필요 없는 곳에서 사용합니다.
*/
package memstore

import (
	"context"
	"sync"
)

type Store struct {
	mu      sync.RWMutex
	records map[string]any
}

func New() *Store {
	return &Store{
		records: make(map[string]any),
	}
}

func (s *Store) Put(id string, record any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = record
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

func (s *Store) FindByID(ctx context.Context, id string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, false, nil
	}
	return record, true, nil
}
