// Package server exposes the simulation over websockets: each client gets a
// tank, sends input commands, and receives JSON snapshots every tick.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tankarena/internal/config"
	"tankarena/internal/game"
)

const (
	writeWait      = 5 * time.Second
	sendBufferSize = 8
)

// inputCommand is the message clients send.
type inputCommand struct {
	Throttle float32 `json:"throttle"`
	Turn     float32 `json:"turn"`
	Fire     bool    `json:"fire"`
	Loadout  string  `json:"loadout,omitempty"`
}

type client struct {
	conn *websocket.Conn
	tank *game.Tank
	send chan []byte
}

// Hub accepts websocket clients and drives the world's tick loop. World
// mutation is confined to the tick goroutine; client reads funnel input
// through a channel.
type Hub struct {
	cfg   *config.Config
	log   *zap.Logger
	world *game.World

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	inputs chan tankInput
	joins  chan *client
	parts  chan *client

	lastHash uint64
	spawnSeq int
}

type tankInput struct {
	tank *game.Tank
	cmd  inputCommand
}

func NewHub(cfg *config.Config, world *game.World, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		cfg:      cfg,
		log:      log,
		world:    world,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
		inputs:   make(chan tankInput, 256),
		joins:    make(chan *client, 16),
		parts:    make(chan *client, 16),
	}
}

// ServeHTTP upgrades the connection and registers a tank for the client.
func (h *Hub) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, req, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.joins <- c
	go h.readPump(c)
	go h.writePump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.parts <- c
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd inputCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			h.log.Debug("bad input message", zap.Error(err))
			continue
		}
		h.inputs <- tankInput{tank: c.tank, cmd: cmd}
	}
}

func (h *Hub) writePump(c *client) {
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Run serves HTTP and steps the world until the context is canceled.
func (h *Hub) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{Addr: h.cfg.Server.Addr, Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		err := srv.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	})
	g.Go(func() error {
		h.tickLoop(ctx)
		return nil
	})
	h.log.Info("arena server running", zap.String("addr", h.cfg.Server.Addr))
	return g.Wait()
}

func (h *Hub) tickLoop(ctx context.Context) {
	dt := 1 / float32(h.cfg.Sim.TickRate)
	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.Sim.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.joins:
			h.join(c)
		case c := <-h.parts:
			h.part(c)
		case in := <-h.inputs:
			h.applyInput(in)
		case <-ticker.C:
			h.drainInputs()
			h.world.Step(dt)
			h.broadcast()
		}
	}
}

func (h *Hub) drainInputs() {
	for {
		select {
		case c := <-h.joins:
			h.join(c)
		case c := <-h.parts:
			h.part(c)
		case in := <-h.inputs:
			h.applyInput(in)
		default:
			return
		}
	}
}

func (h *Hub) join(c *client) {
	loadout, err := h.world.LoadoutFor("penetration")
	if err != nil {
		h.log.Error("default loadout missing", zap.Error(err))
		c.conn.Close()
		return
	}
	h.spawnSeq++
	name := fmt.Sprintf("tank_%d", h.spawnSeq)
	c.tank = h.world.SpawnTank(name, h.spawnPosition(), 0, loadout)

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Info("client joined", zap.String("tank", name))
}

func (h *Hub) part(c *client) {
	h.mu.Lock()
	_, known := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if !known {
		return
	}
	close(c.send)
	if c.tank != nil {
		h.world.RemoveTank(c.tank)
		h.log.Info("client left", zap.String("tank", c.tank.Name))
	}
}

func (h *Hub) applyInput(in tankInput) {
	if in.tank == nil || !in.tank.Alive() {
		return
	}
	if in.cmd.Loadout != "" {
		if loadout, err := h.world.LoadoutFor(in.cmd.Loadout); err == nil {
			in.tank.Loadout = loadout
		}
	}
	in.tank.SetInput(game.TankInput{
		Throttle: in.cmd.Throttle,
		Turn:     in.cmd.Turn,
		Fire:     in.cmd.Fire,
	})
}

// spawnPosition spreads tanks around a ring so they don't stack on spawn.
func (h *Hub) spawnPosition() mgl32.Vec3 {
	radius := math32.Min(h.cfg.Arena.Width, h.cfg.Arena.Depth) * 0.35
	angle := float32(h.spawnSeq) * 2.399963 // golden angle keeps spawns spread
	return mgl32.Vec3{radius * math32.Cos(angle), 0, radius * math32.Sin(angle)}
}

// broadcast sends the current snapshot to every client, skipping the send
// entirely when the encoded state has not changed since last tick.
func (h *Hub) broadcast() {
	snap := BuildSnapshot(h.world)
	hash, err := snap.StateHash()
	if err != nil {
		h.log.Error("snapshot encode failed", zap.Error(err))
		return
	}
	if hash == h.lastHash {
		return
	}
	h.lastHash = hash
	data, err := snap.Encode()
	if err != nil {
		h.log.Error("snapshot encode failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Slow client; drop this frame for it.
		}
	}
}
