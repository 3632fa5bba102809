package consumer

import (
	"sync"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/boot"
)

type Registration struct {
	Broker boot.Broker
	Topic  string
	Meta   core.HandlerMeta
}

type Registry struct {
	mu            sync.RWMutex
	registrations []Registration
}

func NewRegistry() *Registry {
	return &Registry{
		registrations: make([]Registration, 0),
	}
}

func (r *Registry) Register(reg Registration) {
	if reg.Topic == "" {
		panic("consumer: topic이 빈 값일 수 없습니다")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, reg)
}

// Registrations는 broker에 해당하는 등록 목록을 반환합니다.
func (r *Registry) Registrations(broker boot.Broker) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(r.registrations))
	for _, reg := range r.registrations {
		if reg.Broker == broker {
			out = append(out, reg)
		}
	}
	return out
}

func (r *Registry) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cpy := make([]Registration, len(r.registrations))
	copy(cpy, r.registrations)
	return cpy
}
