package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/engine/mock"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/world"
)

type stubRenderer struct {
	main  *core.PixelBuffer
	draws int
}

func (r *stubRenderer) Draw(*engine.GameContext) (*core.PixelBuffer, *core.PixelBuffer) {
	r.draws++
	return r.main, nil
}

type tickRecorder struct {
	results []engine.TickResult
}

func (r *tickRecorder) OnTick(res engine.TickResult) {
	r.results = append(r.results, res)
}

type LoopSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	input     *mock.MockInputSource
	presenter *mock.MockPresenter
	renderer  *stubRenderer
	ticks     *tickRecorder
	clock     *engine.MockTimeProvider
	game      *engine.GameContext
}

func TestLoopSuite(t *testing.T) {
	suite.Run(t, new(LoopSuite))
}

func (s *LoopSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.input = mock.NewMockInputSource(s.ctrl)
	s.presenter = mock.NewMockPresenter(s.ctrl)
	s.renderer = &stubRenderer{main: core.NewPixelBuffer(4, 4)}
	s.ticks = &tickRecorder{}
	s.clock = engine.NewMockTimeProvider(time.Unix(0, 0))

	p, err := player.New(player.DefaultConfig())
	s.Require().NoError(err)
	s.game, err = engine.NewGameContext(world.Reference(), p)
	s.Require().NoError(err)
}

func (s *LoopSuite) newLoop(fps int) *engine.Loop {
	return engine.NewLoop(s.game, s.input, s.renderer, s.presenter,
		engine.WithTargetFPS(fps),
		engine.WithClock(s.clock),
		engine.WithObserver(s.ticks),
	)
}

// expectFrames lets n frames run then requests quit
func (s *LoopSuite) expectFrames(n int) {
	gomock.InOrder(
		s.input.EXPECT().Poll(s.game).Return(false).Times(n),
		s.input.EXPECT().Poll(s.game).Return(true),
	)
	s.presenter.EXPECT().Present(s.renderer.main, gomock.Nil()).Return(nil).Times(n)
}

func (s *LoopSuite) TestPacingSleepsRemainder() {
	s.expectFrames(3)
	s.clock.OnNow = func(m *engine.MockTimeProvider) { m.Advance(3 * time.Millisecond) }

	l := s.newLoop(50)
	s.Require().NoError(l.Run(context.Background()))

	s.Assert().Equal(20*time.Millisecond, l.FrameTime())
	s.Assert().Equal([]time.Duration{17 * time.Millisecond, 17 * time.Millisecond, 17 * time.Millisecond}, s.clock.Sleeps())

	s.Require().Len(s.ticks.results, 3)
	s.Assert().Equal(time.Duration(0), s.ticks.results[0].Elapsed)
	s.Assert().Equal(20*time.Millisecond, s.ticks.results[1].Elapsed)
	s.Assert().Equal(20*time.Millisecond, s.ticks.results[2].Elapsed)
	s.Assert().Equal(3, s.renderer.draws)
	s.Assert().EqualValues(3, l.Stats().Frames())
}

func (s *LoopSuite) TestOverrunFeedsActualTime() {
	s.expectFrames(2)
	s.clock.OnNow = func(m *engine.MockTimeProvider) { m.Advance(30 * time.Millisecond) }

	l := s.newLoop(50)
	s.Require().NoError(l.Run(context.Background()))

	s.Assert().Empty(s.clock.Sleeps())
	s.Assert().Equal(30*time.Millisecond, s.ticks.results[1].Elapsed)
	s.Assert().EqualValues(2, l.Stats().Snapshot()["overruns"])
}

func (s *LoopSuite) TestUncappedNeverSleeps() {
	s.expectFrames(2)
	s.clock.OnNow = func(m *engine.MockTimeProvider) { m.Advance(time.Millisecond) }

	l := s.newLoop(0)
	s.Require().NoError(l.Run(context.Background()))

	s.Assert().Empty(s.clock.Sleeps())
	s.Assert().Equal(time.Millisecond, s.ticks.results[1].Elapsed)
}

func (s *LoopSuite) TestQuitSkipsFrame() {
	s.input.EXPECT().Poll(s.game).DoAndReturn(func(ctx *engine.GameContext) bool {
		ctx.MoveForward()
		return true
	})

	quit, err := s.newLoop(0).Step(time.Second)
	s.Require().NoError(err)
	s.Assert().True(quit)
	s.Assert().Zero(s.renderer.draws)
	s.Assert().Empty(s.ticks.results)
}

func (s *LoopSuite) TestStepAppliesPolledIntents() {
	s.input.EXPECT().Poll(s.game).DoAndReturn(func(ctx *engine.GameContext) bool {
		ctx.MoveForward()
		return false
	})
	s.presenter.EXPECT().Present(gomock.Any(), gomock.Any()).Return(nil)

	quit, err := s.newLoop(0).Step(100 * time.Millisecond)
	s.Require().NoError(err)
	s.Assert().False(quit)
	s.Assert().Equal(21.0, s.game.Player().Position.X)
	s.Assert().Equal(engine.IntentNone, s.game.Intents())
}

func (s *LoopSuite) TestPresenterErrorStopsLoop() {
	boom := errors.New("boom")
	s.input.EXPECT().Poll(s.game).Return(false)
	s.presenter.EXPECT().Present(gomock.Any(), gomock.Any()).Return(boom)

	err := s.newLoop(0).Run(context.Background())
	s.Assert().ErrorIs(err, boom)
}

func (s *LoopSuite) TestPresenterQuitEndsCleanly() {
	s.input.EXPECT().Poll(s.game).Return(false)
	s.presenter.EXPECT().Present(gomock.Any(), gomock.Any()).Return(engine.ErrQuit)

	s.Assert().NoError(s.newLoop(0).Run(context.Background()))
}

func (s *LoopSuite) TestCancelledContextStopsBeforeFrame() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Assert().NoError(s.newLoop(0).Run(ctx))
	s.Assert().Zero(s.renderer.draws)
}

func TestTargetFrameTime(t *testing.T) {
	assert.Equal(t, time.Duration(0), engine.TargetFrameTime(0))
	assert.Equal(t, time.Duration(0), engine.TargetFrameTime(-5))
	assert.Equal(t, 16*time.Millisecond, engine.TargetFrameTime(60))
	assert.Equal(t, 33*time.Millisecond, engine.TargetFrameTime(30))
	assert.Equal(t, time.Duration(0), engine.TargetFrameTime(2000))
}

func TestPresentersFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockPresenter(ctrl)
	b := mock.NewMockPresenter(ctrl)
	buf := core.NewPixelBuffer(1, 1)

	a.EXPECT().Present(buf, nil).Return(errors.New("a failed"))
	b.EXPECT().Present(buf, nil).Return(nil)

	err := engine.Presenters{a, b}.Present(buf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a failed")
}

func TestInputSourcesPollsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockInputSource(ctrl)
	b := mock.NewMockInputSource(ctrl)

	a.EXPECT().Poll(nil).Return(true)
	b.EXPECT().Poll(nil).Return(false)

	assert.True(t, engine.InputSources{a, b}.Poll(nil))
}
