package service

import (
	"sort"

	"lovedj/internal/core"
	"lovedj/internal/service/chat"
	"lovedj/internal/service/models"
)

type Registry struct {
	ChatServices   map[core.ProviderName]chat.Service
	ModelsServices map[core.ProviderName]models.Service
}

func NewRegistry() *Registry {
	return &Registry{
		ChatServices:   make(map[core.ProviderName]chat.Service),
		ModelsServices: make(map[core.ProviderName]models.Service),
	}
}

func (r *Registry) RegisterChat(provider core.ProviderName, service chat.Service) {
	r.ChatServices[provider] = service
}
func (r *Registry) GetChat(provider core.ProviderName) (chat.Service, bool) {
	svc, ok := r.ChatServices[provider]
	return svc, ok
}

func (r *Registry) RegisterModels(provider core.ProviderName, service models.Service) {
	r.ModelsServices[provider] = service
}

// ModelLister 依 provider 名稱排序，讓列舉結果順序固定
func (r *Registry) ModelLister() []models.Service {
	names := make([]string, 0, len(r.ModelsServices))
	for name := range r.ModelsServices {
		names = append(names, string(name))
	}
	sort.Strings(names)

	out := make([]models.Service, 0, len(names))
	for _, name := range names {
		out = append(out, r.ModelsServices[core.ProviderName(name)])
	}
	return out
}

// Providers 已註冊 chat 的 provider
func (r *Registry) Providers() []core.ProviderName {
	out := make([]core.ProviderName, 0, len(r.ChatServices))
	for name := range r.ChatServices {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
