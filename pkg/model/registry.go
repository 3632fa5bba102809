package model

import (
	"fmt"
	"sort"
	"sync"
)

// Registry는 심볼 이름(user, article...)을 Source로 매핑합니다.
// 부트스트랩 단계에서 채워지고 이후에는 읽기 전용으로 사용됩니다.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

func (r *Registry) Register(name string, source Source) error {
	if name == "" {
		return fmt.Errorf("model: 이름이 빈 값일 수 없습니다")
	}
	if source == nil {
		return fmt.Errorf("model: source가 nil일 수 없습니다 (%s)", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sources[name]; ok {
		return fmt.Errorf("model: 이미 등록된 이름입니다: %s", name)
	}
	r.sources[name] = source
	return nil
}

// Lookup은 이름에 해당하는 Source를 반환합니다.
// 등록되지 않은 이름은 설정 오류이므로 에러를 반환합니다.
func (r *Registry) Lookup(name string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("model: 등록되지 않은 모델입니다: %s", name)
	}
	return source, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
