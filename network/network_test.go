package network

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/engine"
)

func testFrame() (*core.PixelBuffer, *core.PixelBuffer) {
	main := core.NewPixelBuffer(3, 2)
	main.Fill(core.Blue)
	main.Set(0, 0, core.Red)
	mm := core.NewPixelBuffer(2, 2)
	mm.Set(1, 1, core.Green)
	return main, mm
}

func TestEncodeDecodeFrame(t *testing.T) {
	main, mm := testFrame()
	msg, err := EncodeFrame(nil, 7, main, mm)
	require.NoError(t, err)
	assert.Len(t, msg, HeaderSize+3*2*4+2*2*4)

	f, err := DecodeFrame(msg)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), f.Seq)
	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 2, f.Height)
	assert.Equal(t, []byte{255, 0, 0, 255}, f.Main[:4])
	assert.Equal(t, []byte{0, 0, 255, 255}, f.Main[4:8])
	assert.Equal(t, 2, f.MapSize)
	assert.Equal(t, []byte{0, 255, 0, 255}, f.Minimap[12:16])
}

func TestEncodeFrameWithoutMinimap(t *testing.T) {
	main, _ := testFrame()
	msg, err := EncodeFrame(nil, 0, main, nil)
	require.NoError(t, err)

	f, err := DecodeFrame(msg)
	require.NoError(t, err)
	assert.Zero(t, f.MapSize)
	assert.Nil(t, f.Minimap)

	_, err = EncodeFrame(nil, 0, core.NewPixelBuffer(70000, 1), nil)
	assert.ErrorIs(t, err, ErrFrameSize)
}

func TestDecodeFrameRejectsMalformed(t *testing.T) {
	_, err := DecodeFrame([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortMessage)

	main, _ := testFrame()
	msg, err := EncodeFrame(nil, 0, main, nil)
	require.NoError(t, err)

	bad := append([]byte(nil), msg...)
	bad[0] = 0x7f
	_, err = DecodeFrame(bad)
	assert.ErrorIs(t, err, ErrMessageType)

	_, err = DecodeFrame(msg[:len(msg)-1])
	assert.Error(t, err)
}

func TestHubDropsWhenBusy(t *testing.T) {
	dropped := 0
	h := NewHub(func() { dropped++ })
	assert.True(t, h.Broadcast([]byte{1}))
	assert.False(t, h.Broadcast([]byte{2}), "hub not running, queue holds one frame")
	assert.Equal(t, 1, dropped)
}

func TestStreamSkipsWithoutSpectators(t *testing.T) {
	h := NewHub(nil)
	s := NewStream(h, 1)
	main, mm := testFrame()
	require.NoError(t, s.Present(main, mm))
	assert.Zero(t, s.seq)
}

type ServerSuite struct {
	suite.Suite
	stats  *engine.Stats
	server *Server
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *ServerSuite) SetupTest() {
	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.Every = 2
	s.stats = &engine.Stats{}
	s.server = NewServer(cfg, s.stats, nil)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.Require().NoError(s.server.Start(s.ctx))
}

func (s *ServerSuite) TearDownTest() {
	s.Require().NoError(s.server.Shutdown(context.Background()))
	s.cancel()
}

func (s *ServerSuite) dial() *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.server.Addr()+"/ws", nil)
	s.Require().NoError(err)
	s.Eventually(func() bool { return s.server.Hub().Clients() > 0 }, time.Second, 5*time.Millisecond)
	return conn
}

func (s *ServerSuite) TestBroadcastsEveryNthFrame() {
	conn := s.dial()
	defer conn.Close()

	stream := NewStream(s.server.Hub(), 2)
	main, mm := testFrame()
	s.Require().NoError(stream.Present(main, mm))
	s.Require().NoError(stream.Present(main, mm))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	s.Require().NoError(err)
	s.Equal(websocket.BinaryMessage, kind)

	f, err := DecodeFrame(data)
	s.Require().NoError(err)
	s.Equal(uint32(0), f.Seq)
	s.Equal(3, f.Width)
	s.Equal(2, f.MapSize)
}

func (s *ServerSuite) TestMetricsAndHealth() {
	s.stats.AddFrame(10*time.Millisecond, false)
	conn := s.dial()
	defer conn.Close()

	resp, err := http.Get("http://" + s.server.Addr() + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.EqualValues(1, body["frames"])
	s.EqualValues(1, body["spectators"])

	health, err := http.Get("http://" + s.server.Addr() + "/healthz")
	s.Require().NoError(err)
	defer health.Body.Close()
	text, _ := io.ReadAll(health.Body)
	s.Equal(http.StatusOK, health.StatusCode)
	s.Equal("ok", string(text))
}

func (s *ServerSuite) TestClientDisconnectUnregisters() {
	conn := s.dial()
	conn.Close()
	s.Eventually(func() bool { return s.server.Hub().Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func (s *ServerSuite) TestShutdownClosesSpectators() {
	conn := s.dial()
	defer conn.Close()

	s.cancel()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	s.Error(err)
}

func TestHandlerMountedWithoutStart(t *testing.T) {
	srv := NewServer(DefaultConfig(), nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return srv.Hub().Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.True(t, srv.Hub().Broadcast([]byte{byte(MsgFrame)}))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(MsgFrame)}, data)

	require.NoError(t, srv.Shutdown(context.Background()))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
