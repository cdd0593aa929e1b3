package archetypes

import (
	"github.com/automoto/snapscroll/components"
	cfg "github.com/automoto/snapscroll/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scroller = newArchetype(
		components.Scroller,
		components.Pointer,
	)
	Gallery = newArchetype(
		components.Gallery,
	)
	Space = newArchetype(
		components.Space,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
