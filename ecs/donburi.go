package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// MotionEventType is the Donburi event type for sway status events.
// Subscribe to this in your ECS systems to react to motion lifecycle
// changes (started, reversed, completed, and so on).
var MotionEventType = events.NewEventType[sway.StatusEvent]()

type donburiNotifier struct {
	world donburi.World
}

// NewDonburiNotifier creates a [sway.Notifier] backed by a Donburi world.
// Status events are published to MotionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiNotifier(world donburi.World) sway.Notifier {
	return &donburiNotifier{world: world}
}

func (n *donburiNotifier) Notify(event sway.StatusEvent) {
	MotionEventType.Publish(n.world, event)
}

// Motions carries the movers animating one entity.
type Motions struct {
	Movers []sway.Mover
}

// MotionsComponent is the Donburi component type for [Motions].
var MotionsComponent = donburi.NewComponentType[Motions]()

var motionsQuery = donburi.NewQuery(filter.Contains(MotionsComponent))

// Attach adds movers to the entry, creating its [Motions] component on
// first use.
func Attach(entry *donburi.Entry, movers ...sway.Mover) {
	if entry.HasComponent(MotionsComponent) {
		data := MotionsComponent.Get(entry)
		data.Movers = append(data.Movers, movers...)
		return
	}
	donburi.Add(entry, MotionsComponent, &Motions{Movers: movers})
}

// AdvanceMotions advances every attached mover in the world by dt
// seconds. Call it once per update tick. Completed movers stay attached;
// remove or restart them as your game requires.
func AdvanceMotions(world donburi.World, dt float64) {
	motionsQuery.Each(world, func(entry *donburi.Entry) {
		data := MotionsComponent.Get(entry)
		for _, m := range data.Movers {
			m.Advance(dt)
		}
	})
}
