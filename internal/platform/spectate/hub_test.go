package spectate

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/games/rush"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(log.New(io.Discard))
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) rush.Snapshot {
	t.Helper()
	//nolint:errcheck // Test deadline
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	kind, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", kind)
	}

	snap, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	return snap
}

func testSnapshot(tick uint64) rush.Snapshot {
	return rush.Snapshot{
		Tick:     tick,
		State:    rush.StatePlaying,
		Lane:     rush.LaneRight,
		Lives:    2,
		Score:    140,
		Distance: 42.5,
		Obstacles: []rush.Obstacle{
			{ID: 3, Lane: rush.LaneLeft, Pos: 120, Kind: rush.ObstacleTruck, Height: 120},
		},
		PowerUps: []rush.PowerUp{
			{ID: 4, Lane: rush.LaneCenter, Pos: 60, Kind: rush.PowerUpCoin},
		},
	}
}

func TestViewerReceivesLatestOnJoin(t *testing.T) {
	hub, url := startHub(t)
	hub.Publish(testSnapshot(7))

	conn := dial(t, url)
	got := readSnapshot(t, conn)

	if got.Tick != 7 || got.Score != 140 || got.Lane != rush.LaneRight {
		t.Errorf("snapshot = %+v", got)
	}
	if len(got.Obstacles) != 1 || got.Obstacles[0].Kind != rush.ObstacleTruck {
		t.Errorf("obstacles = %+v", got.Obstacles)
	}
	if len(got.PowerUps) != 1 || got.PowerUps[0].Kind != rush.PowerUpCoin {
		t.Errorf("power-ups = %+v", got.PowerUps)
	}
}

func TestViewerReceivesPublishedFrames(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)

	// Keep publishing until the viewer is registered and sees tick 9.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Publish(testSnapshot(9))
		//nolint:errcheck // Test deadline
		conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
		_, frame, err := conn.ReadMessage()
		if err != nil {
			continue
		}
		snap, err := Decode(frame)
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}
		if snap.Tick == 9 {
			return
		}
	}
	t.Fatal("viewer never received the published frame")
}

func TestPublishDoesNotBlockWithoutRun(t *testing.T) {
	hub := NewHub(log.New(io.Discard))

	done := make(chan struct{})
	go func() {
		for i := range 1000 {
			hub.Publish(testSnapshot(uint64(i)))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked")
	}

	snap, err := Decode(hub.Latest())
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if snap.Tick != 999 {
		t.Errorf("latest tick = %d, want 999", snap.Tick)
	}
}

func TestDecodeRoundTripsEngineSnapshot(t *testing.T) {
	e := rush.NewEngine(config.DefaultRushConfig(), rush.Options{Seed: 1})
	for range 200 {
		e.Tick(time.Second / 60)
	}
	want := e.Snapshot()

	hub := NewHub(log.New(io.Discard))
	hub.Publish(want)

	got, err := Decode(hub.Latest())
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got.Hash() != want.Hash() {
		t.Errorf("hash mismatch after decode: %d != %d", got.Hash(), want.Hash())
	}
}

func TestDecodeRejectsInvalidFrames(t *testing.T) {
	badPlayer := testSnapshot(1)
	badPlayer.Lane = 2

	badObstacle := testSnapshot(1)
	badObstacle.Obstacles[0].Lane = -2

	badPowerUp := testSnapshot(1)
	badPowerUp.PowerUps[0].Lane = 5

	tests := []struct {
		name string
		snap rush.Snapshot
	}{
		{"player lane", badPlayer},
		{"obstacle lane", badObstacle},
		{"power-up lane", badPowerUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := msgpack.Marshal(tc.snap)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if _, err := Decode(frame); err == nil {
				t.Error("Decode() should reject an out-of-range lane")
			}
		})
	}

	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("Decode() should reject malformed msgpack")
	}
}
