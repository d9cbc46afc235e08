package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule 业务模块（handler）实现它即可挂到 API 引擎上
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂），不实现则默认 100
type prioritizer interface{ Priority() int }

// Registry 按优先级挂载模块；引擎构建期使用，不做并发保护
type Registry struct {
	mods []APIModule
}

func NewRegistry(mods ...APIModule) *Registry {
	return &Registry{mods: append([]APIModule(nil), mods...)}
}

func (r *Registry) Register(m APIModule) { r.mods = append(r.mods, m) }

func (r *Registry) MountAll(g *gin.RouterGroup) {
	mods := append([]APIModule(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
