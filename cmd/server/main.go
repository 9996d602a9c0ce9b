// Command server runs an api-key guarded gateway: a gin HTTP server and a
// gRPC server (health service) sharing one authorization policy, with a
// configurable default access pattern for memory maps.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/BabaBert/qdrant/apikey"
	"github.com/BabaBert/qdrant/mmap"
)

func main() {
	httpAddr := flag.String("http-addr", ":6333", "http listen address")
	grpcAddr := flag.String("grpc-addr", ":6334", "grpc listen address")
	masterKey := flag.String("master-key", "", "api key admitting any request")
	readOnlyKey := flag.String("read-only-key", "", "api key admitting GET requests only")
	advice := flag.String("advice", "random", "mmap access pattern: normal, random, sequential or populate_read")
	rps := flag.Float64("rps", 0, "http requests per second limit, 0 disables")
	logJSON := flag.Bool("log-json", false, "log in JSON format")

	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)

	var pattern mmap.AccessPattern
	if err := pattern.UnmarshalText([]byte(*advice)); err != nil {
		logger.Error("invalid advice flag", "error", err)
		os.Exit(1)
	}
	mmap.SetDefaultAccessPattern(pattern)

	policy := apikey.New(*masterKey, *readOnlyKey)
	if policy.Phantom() {
		logger.Warn("no api keys configured, all requests are admitted")
	}

	httpSrv := &http.Server{
		Addr:              *httpAddr,
		Handler:           newRouter(policy, *rps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(apikey.UnaryInterceptor(policy)),
		grpc.ChainStreamInterceptor(apikey.StreamInterceptor(policy)),
	)
	grpc_health_v1.RegisterHealthServer(grpcSrv, health.NewServer())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", *httpAddr, "advice", pattern.String())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", *grpcAddr)
		if err != nil {
			return err
		}
		logger.Info("grpc server listening", "addr", *grpcAddr)
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		grpcSrv.GracefulStop()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newRouter(policy apikey.Policy, rps float64) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID())

	if rps > 0 {
		engine.Use(throttle(rate.NewLimiter(rate.Limit(rps), int(rps)+1)))
	}

	engine.Use(apikey.Middleware(policy))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/v1")
	v1.GET("/collections", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": []string{}})
	})
	v1.PUT("/collections/:name", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "status": "created"})
	})

	return engine
}

// requestID tags every request and response with a unique id.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("x-request-id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("x-request-id", id)
		c.Next()
	}
}

// throttle rejects requests above the configured rate with 429.
func throttle(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
