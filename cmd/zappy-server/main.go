// Command zappy-server runs the Zappy game server: the agent, gfx, and
// admin TCP listeners, the fixed-rate game loop, and graceful shutdown.
//
// Grounded on the teacher's cmd/server/main.go (DowLucas-promptlands) for
// the overall wiring shape, and on original_source/server/src/main.rs for
// the three-listener startup sequence.
package main

import (
	"context"
	"crypto/tls"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lucas/zappy/internal/adminauth"
	"github.com/lucas/zappy/internal/config"
	"github.com/lucas/zappy/internal/gameloop"
	"github.com/lucas/zappy/internal/zappyconn"
	"github.com/lucas/zappy/internal/zappygame"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	args, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid arguments")
	}

	balance, err := config.LoadBalance("balance.yaml")
	if err != nil {
		log.WithError(err).Fatal("failed to load balance config")
	}

	creds, err := config.AdminCredentials()
	if err != nil {
		log.WithError(err).Fatal("failed to load admin credentials")
	}
	store, err := adminauth.NewStore(creds)
	if err != nil {
		log.WithError(err).Fatal("failed to hash admin credentials")
	}

	tlsCert, err := tls.LoadX509KeyPair("cert.pem", "key.pem")
	if err != nil {
		log.WithError(err).Fatal("failed to load TLS certificate")
	}
	tlsConfig := &tls.Config{Certificates: []tls.Certificate{tlsCert}}

	log.WithFields(logrus.Fields{
		"width":   args.Width,
		"height":  args.Height,
		"teams":   args.Names,
		"clients": args.Clients,
		"tud":     args.Tud,
	}).Info("starting zappy-server")

	// Seeded from real entropy; tests pin a fixed seed instead (see
	// internal/zappyworld/rand_test.go).
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := zappygame.NewEngine(args.Width, args.Height, args.Names, args.Clients, balance.LifeTicks, rng)
	engine.EggFetchTimeDelay = balance.EggFetchTimeDelay
	engine.IncantationDuration = balance.IncantationDuration

	server := zappyconn.NewServer(engine, balance, log)

	ctx, cancel := context.WithCancel(context.Background())

	agentListener, err := net.Listen("tcp", addr(args.Port))
	if err != nil {
		log.WithError(err).Fatal("failed to listen on agent port")
	}
	gfxListener, err := net.Listen("tcp", addr(args.GfxPort))
	if err != nil {
		log.WithError(err).Fatal("failed to listen on gfx port")
	}
	adminListener, err := tls.Listen("tcp", addr(args.AdminPort), tlsConfig)
	if err != nil {
		log.WithError(err).Fatal("failed to listen on admin port")
	}

	go acceptLoop(ctx, agentListener, log, func(conn net.Conn) { zappyconn.HandleAgent(conn, server) })
	go acceptLoop(ctx, gfxListener, log, func(conn net.Conn) { zappyconn.HandleGfx(conn, server) })
	go acceptLoop(ctx, adminListener, log, func(conn net.Conn) { zappyconn.HandleAdmin(conn, store, log) })

	runner := &gameloop.Runner{TicksPerSecond: args.Tud, Log: log}
	go runner.Run(ctx, server.Tick)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	cancel()
	agentListener.Close()
	gfxListener.Close()
	adminListener.Close()
}

func acceptLoop(ctx context.Context, l net.Listener, log *logrus.Logger, handle func(net.Conn)) {
	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				log.WithError(err).Warn("accept failed")
				continue
			}
		}
		go handle(conn)
	}
}

func addr(port int) string {
	return ":" + strconv.Itoa(port)
}
