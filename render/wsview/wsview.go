// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wsview provides a [render.Bridge] that broadcasts the world
// transforms of each frame to browser viewers over WebSocket, and takes
// camera input back from them.
package wsview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
	"github.com/gorilla/websocket"
)

// Path is the path of the WebSocket endpoint in [Server.Handler].
const Path = "/ws"

// InputQueueSize is the number of camera inputs held between frames.
// Inputs arriving while the queue is full are dropped.
const InputQueueSize = 64

// Solid is the world transform of one solid in a [Snapshot].
type Solid struct {
	Name  string         `json:"name"`
	Pos   math32.Vector3 `json:"pos"`
	Scale math32.Vector3 `json:"scale"`
}

// CameraState is the camera in a [Snapshot].
type CameraState struct {
	Pos    math32.Vector3 `json:"pos"`
	Target math32.Vector3 `json:"target"`
	FOV    float32        `json:"fov"`
	Aspect float32        `json:"aspect"`
}

// Snapshot is the message sent to viewers for each frame.
type Snapshot struct {
	Frame  int         `json:"frame"`
	Camera CameraState `json:"camera"`
	Solids []Solid     `json:"solids"`
}

// Input is a camera input message sent by a viewer.
// Orbit is in degrees around the target, and Zoom is the fraction
// of the distance to the target to move toward it.
type Input struct {
	Orbit [2]float32 `json:"orbit"`
	Zoom  float32    `json:"zoom"`

	// Reset restores the camera to its initial pose before
	// the orbit and zoom are applied.
	Reset bool `json:"reset"`
}

// Server is a [render.Bridge] and [render.CameraController] serving
// WebSocket viewers. Each call to Render sends one [Snapshot] to every
// viewer without blocking; a viewer that has not yet taken the previous
// frame misses this one.
type Server struct {

	// Upgrader upgrades viewer connections.
	Upgrader websocket.Upgrader

	input chan Input

	mu      sync.Mutex
	clients map[*client]struct{}
	initial xyz.Camera
	hasInit bool
	width   int
	height  int
	frames  int
}

// client is a connected viewer.
type client struct {
	conn *websocket.Conn
	addr string
	send chan []byte
}

// New returns a new Server.
func New() *Server {
	return &Server{
		input:   make(chan Input, InputQueueSize),
		clients: map[*client]struct{}{},
	}
}

// Init records the initial camera pose, which [Input.Reset] restores.
func (sv *Server) Init(cam *xyz.Camera) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.initial = *cam
	sv.hasInit = true
}

// Resize sets the viewport size used for the camera aspect ratio.
func (sv *Server) Resize(width, height int) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.width, sv.height = width, height
}

// Clients returns the number of connected viewers.
func (sv *Server) Clients() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return len(sv.clients)
}

// Frames returns the number of frames rendered.
func (sv *Server) Frames() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.frames
}

// Render applies any queued camera input and broadcasts the world
// transforms of all solids in the scene.
func (sv *Server) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	sv.applyInput(cam)
	sv.mu.Lock()
	cam.SetAspect(sv.width, sv.height)
	sv.frames++
	snap := Snapshot{
		Frame:  sv.frames,
		Camera: CameraState{Pos: cam.Pos, Target: cam.Target, FOV: cam.FOV, Aspect: cam.Aspect},
	}
	sv.mu.Unlock()

	sc.Walk(func(id xyz.NodeID, nd *xyz.Node, world *math32.Matrix4) bool {
		if nd.Kind != xyz.Solid {
			return true
		}
		snap.Solids = append(snap.Solids, Solid{
			Name:  nd.Name,
			Pos:   world.Position(),
			Scale: math32.Vec3(world.ColumnLength(0), world.ColumnLength(1), world.ColumnLength(2)),
		})
		return true
	})
	msg, err := json.Marshal(&snap)
	if err != nil {
		return err
	}
	sv.broadcast(msg)
	return nil
}

// applyInput applies all queued camera input to the camera.
func (sv *Server) applyInput(cam *xyz.Camera) {
	for {
		select {
		case in := <-sv.input:
			if in.Reset {
				sv.mu.Lock()
				if sv.hasInit {
					*cam = sv.initial
				}
				sv.mu.Unlock()
			}
			if in.Orbit[0] != 0 || in.Orbit[1] != 0 {
				cam.Orbit(in.Orbit[0], in.Orbit[1])
			}
			if in.Zoom != 0 {
				cam.Zoom(in.Zoom)
			}
		default:
			return
		}
	}
}

func (sv *Server) broadcast(msg []byte) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for c := range sv.clients {
		select {
		case c.send <- msg:
		default:
			slog.Debug("wsview: viewer missed frame", "addr", c.addr)
		}
	}
}

// Handler returns an HTTP handler serving viewers at [Path].
func (sv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, sv)
	return mux
}

// ServeHTTP upgrades the connection and serves one viewer
// until it disconnects.
func (sv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.Upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn, addr: conn.RemoteAddr().String(), send: make(chan []byte, 1)}
	sv.mu.Lock()
	sv.clients[c] = struct{}{}
	sv.mu.Unlock()
	slog.Info("wsview: viewer connected", "addr", c.addr)

	go c.write()
	sv.read(c)

	sv.mu.Lock()
	delete(sv.clients, c)
	close(c.send)
	sv.mu.Unlock()
	conn.Close()
	slog.Info("wsview: viewer disconnected", "addr", c.addr)
}

// read queues camera input from the viewer until the connection fails.
func (sv *Server) read(c *client) {
	for {
		var in Input
		err := c.conn.ReadJSON(&in)
		if err != nil {
			var se *json.SyntaxError
			var te *json.UnmarshalTypeError
			if errors.As(err, &se) || errors.As(err, &te) {
				slog.Warn("wsview: invalid input", "addr", c.addr, "err", err)
				continue
			}
			return
		}
		select {
		case sv.input <- in:
		default:
			slog.Debug("wsview: input dropped", "addr", c.addr)
		}
	}
}

// write sends frames to the viewer until its send channel is closed.
func (c *client) write() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
}

// ListenAndServe serves viewers on addr until ctx is done.
func (sv *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: sv.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		errors.Log(srv.Shutdown(sctx))
		sv.closeClients()
	}()
	slog.Info("wsview: listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// closeClients closes all viewer connections, which are hijacked
// and so not closed by server shutdown.
func (sv *Server) closeClients() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for c := range sv.clients {
		c.conn.Close()
	}
}
