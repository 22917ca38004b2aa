package enumerate

import (
	"context"
	"maps"
)

// StaticEnumerator 由設定檔提供的 provider -> models 對照（舊版分組格式）
type StaticEnumerator struct {
	groups map[string][]string
}

func NewStaticEnumerator(groups map[string][]string) *StaticEnumerator {
	return &StaticEnumerator{groups: maps.Clone(groups)}
}

func (e *StaticEnumerator) Enumerate(ctx context.Context) (any, error) {
	return e.groups, nil
}
