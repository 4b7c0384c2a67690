package scenes

import (
	"sync"

	"github.com/automoto/stickbrawl/archetypes"
	"github.com/automoto/stickbrawl/assets"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/network"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene renders the shared world of one joined session.
type ArenaScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	netClient    *network.Client
	engine       *anim.Engine
	feed         *systems.KillFeed
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
	log          *logrus.Entry
}

func NewArenaScene(sc SceneChanger, session *Session, client *network.Client) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		session:      session,
		netClient:    client,
		engine:       anim.NewEngine(session.Keyframes).WithClock(client.Clock().Now),
		feed:         &systems.KillFeed{},
		presentIDs:   make(map[esync.NetworkId]bool),
		log:          logger.For("arena"),
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	state := as.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		reason := "connection lost"
		if err := as.netClient.LastError(); err != nil {
			reason = err.Error()
		}
		as.log.WithField("reason", reason).Info("session ended")
		as.netClient.Disconnect()
		as.sceneChanger.ChangeScene(NewConnectScene(as.sceneChanger, as.session, reason))
		return
	}

	if snap := as.netClient.LatestSnapshot(); snap != nil {
		as.applySnapshot(*snap)
	}

	as.ecsWorld.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	if as.ecsWorld == nil {
		return
	}

	as.ecsWorld.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecsWorld = ecs.NewECS(donburi.NewWorld())

	arena, err := leveldata.LoadArena(assets.Levels(), assets.DefaultArena)
	if err != nil {
		as.log.WithError(err).Error("failed to load arena backdrop")
		arena = &leveldata.Arena{}
	}

	sendFn := func(msg any) error {
		if as.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return as.netClient.SendMessage(msg)
	}
	now := as.netClient.Clock().Now

	as.ecsWorld.AddSystem(systems.NewNetworkInputSystem(sendFn))
	as.ecsWorld.AddSystem(systems.NewNetEventSystem(as.netClient, now, as.feed))
	as.ecsWorld.AddSystem(systems.NewNetInterpSystem(as.netClient.TickRate))
	as.ecsWorld.AddSystem(systems.NewPoseSystem(as.engine))
	as.ecsWorld.AddRenderer(cfg.LayerArena, systems.NewArenaRenderer(arena))
	as.ecsWorld.AddRenderer(cfg.LayerFighters, systems.NewFighterRenderer(now, as.netClient.NetworkID))
	as.ecsWorld.AddRenderer(cfg.LayerHUD, systems.NewHUDRenderer(as.netClient.ServerName, now, as.feed))
}

func (as *ArenaScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := as.ecsWorld.World
	now := as.engine.Now()

	clear(as.presentIDs)

	for _, ent := range snapshot {
		as.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = archetypes.SpawnFighter(as.ecsWorld, ent.Id, componentTypesFromInstances(compData)...).Entity()
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			applyComponentToEntry(entry, data, now)
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !as.presentIDs[*id] {
			entry.Remove()
		}
	})
}

func componentTypesFromInstances(instances []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range instances {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetFighterData:
			ctypes = append(ctypes, netcomponents.NetFighter)
		case netcomponents.NetAnimationData:
			ctypes = append(ctypes, netcomponents.NetAnimation)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any, now int64) {
	switch v := data.(type) {
	case netcomponents.NetPositionData:
		if !entry.HasComponent(netcomponents.NetPosition) {
			entry.AddComponent(netcomponents.NetPosition)
		}
		pos := netcomponents.NetPosition.Get(entry)
		interp := components.NetInterp.Get(entry)
		wasInitialized := interp.Initialized
		interp.Retarget(pos.X, pos.Y, v.X, v.Y)
		if !wasInitialized {
			netcomponents.NetPosition.SetValue(entry, v)
		}
	case netcomponents.NetVelocityData:
		if !entry.HasComponent(netcomponents.NetVelocity) {
			entry.AddComponent(netcomponents.NetVelocity)
		}
		netcomponents.NetVelocity.SetValue(entry, v)
	case netcomponents.NetFighterData:
		if !entry.HasComponent(netcomponents.NetFighter) {
			entry.AddComponent(netcomponents.NetFighter)
		}
		netcomponents.NetFighter.SetValue(entry, v)
	case netcomponents.NetAnimationData:
		if !entry.HasComponent(netcomponents.NetAnimation) {
			entry.AddComponent(netcomponents.NetAnimation)
		}
		netcomponents.NetAnimation.SetValue(entry, v)
		systems.SyncAnimation(components.FighterView.Get(entry), v, now)
	}
}
