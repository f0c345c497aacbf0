package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/trytobebee/food_run/pkg/config"
	"github.com/trytobebee/food_run/pkg/game"
	"github.com/trytobebee/food_run/pkg/renderer"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Server holds what every game session shares
type Server struct {
	settings     config.Settings
	board        *game.Leaderboard
	restartDelay time.Duration
	restartWait  time.Duration

	sessions  sync.Map // id -> *GameServer
	activeIPs sync.Map
}

func newServer(settings config.Settings, board *game.Leaderboard) *Server {
	return &Server{
		settings:     settings,
		board:        board,
		restartDelay: config.RestartDelay,
		restartWait:  config.RestartWait,
	}
}

func (s *Server) routes() *gin.Engine {
	router := gin.Default()
	router.GET("/ws", s.handleWebSocket)
	router.GET("/leaderboard", s.handleLeaderboard)
	router.GET("/sessions/:id/board.png", s.handleBoard)
	return router
}

func (s *Server) handleWebSocket(c *gin.Context) {
	ip := c.ClientIP()
	if _, loaded := s.activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected\n", ip)
		c.JSON(http.StatusConflict, gin.H{"error": "Already connected"})
		return
	}
	defer s.activeIPs.Delete(ip)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	gs, err := newGameServer(s, conn)
	if err != nil {
		log.Println("Failed to start game:", err)
		return
	}
	s.sessions.Store(gs.id, gs)
	defer s.sessions.Delete(gs.id)
	log.Printf("New session %s from %s", gs.id, ip)

	eg, ctx := errgroup.WithContext(c.Request.Context())
	eg.Go(func() error {
		return gs.readLoop(ctx)
	})
	eg.Go(func() error {
		// Closing the socket ends readLoop once the games are over
		defer conn.Close()
		return gs.gameLoop(ctx)
	})

	if err := eg.Wait(); err != nil && !isClosed(err) {
		log.Printf("Session %s ended: %v", gs.id, err)
	}
}

func isClosed(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) ||
		errors.Is(err, net.ErrClosed)
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	if s.board == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard disabled"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}
	runs, err := s.board.Top(c.Request.Context(), limit)
	if err != nil {
		log.Println("Leaderboard error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	if runs == nil {
		runs = []game.Run{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleBoard(c *gin.Context) {
	v, ok := s.sessions.Load(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such session"})
		return
	}
	gs := v.(*GameServer)

	var buf bytes.Buffer
	gs.mu.Lock()
	err := renderer.WritePNG(&buf, gs.game.World, renderer.DefaultBlockSize)
	gs.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "data/game.db", "leaderboard database, empty disables it")
	configPath := flag.String("config", "", "settings file (JSON)")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var board *game.Leaderboard
	if *dbPath != "" {
		var err error
		if board, err = game.OpenLeaderboard(*dbPath); err != nil {
			log.Fatal(err)
		}
		defer board.Close()
	}

	router := newServer(settings, board).routes()
	if _, err := os.Stat("web/static"); err == nil {
		router.Static("/static", "web/static")
	}

	fmt.Printf("🚀 Food Run server starting on http://localhost%s\n", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
