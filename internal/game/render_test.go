package game_test

import (
	"testing"

	"github.com/Garsondee/Circle-Arena/internal/game"
	"github.com/Garsondee/Circle-Arena/internal/game/mocks"
	"github.com/Garsondee/Circle-Arena/internal/geom"
	"go.uber.org/mock/gomock"
)

// kindIs matches a DrawRequest of one entity kind.
type kindIs game.Kind

func (k kindIs) Matches(x any) bool {
	req, ok := x.(game.DrawRequest)
	return ok && req.Kind == game.Kind(k)
}

func (k kindIs) String() string {
	return "draw request for " + game.Kind(k).String()
}

func newRenderSim() *game.TestSim {
	return game.NewTestSim(
		game.WithoutStartingEnemies(),
		game.WithEnemyAt(300, 0),
		game.WithBulletAt(-200, 0, 0, 1),
	)
}

func TestRender_PlayerEnemiesBulletsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	gomock.InOrder(
		r.EXPECT().DrawEntity(kindIs(game.KindPlayer)),
		r.EXPECT().DrawEntity(kindIs(game.KindEnemy)),
		r.EXPECT().DrawEntity(kindIs(game.KindBullet)),
	)
	newRenderSim().Session.Render(r)
}

func TestRender_PlayerBlinksWhileInvulnerable(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	ts := newRenderSim()
	p := ts.Session.Player()

	p.Invulnerable = 5
	r.EXPECT().DrawEntity(kindIs(game.KindEnemy)).Times(1)
	r.EXPECT().DrawEntity(kindIs(game.KindBullet)).Times(1)
	ts.Session.Render(r)

	p.Invulnerable = 4
	r.EXPECT().DrawEntity(kindIs(game.KindPlayer)).Times(1)
	r.EXPECT().DrawEntity(kindIs(game.KindEnemy)).Times(1)
	r.EXPECT().DrawEntity(kindIs(game.KindBullet)).Times(1)
	ts.Session.Render(r)
}

func TestRender_PlayerFacesAim(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	ts := game.NewTestSim(
		game.WithoutStartingEnemies(),
		game.WithInput(func(*game.Session) game.Input {
			return game.Input{Aim: geom.V(0, 100), AimWorld: true}
		}),
	)
	ts.RunTicks(1)

	var got game.DrawRequest
	r.EXPECT().DrawEntity(kindIs(game.KindPlayer)).Do(func(req game.DrawRequest) {
		got = req
	})
	ts.Session.Render(r)

	if !got.HasFacing || got.Facing != geom.V(0, 1) {
		t.Fatalf("player facing %+v (has=%v), want (0,1)", got.Facing, got.HasFacing)
	}
	if got.Color != game.ColorPlayer || got.Radius != ts.Session.Config().PlayerRadius {
		t.Fatalf("unexpected player request %+v", got)
	}
}
