package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/MJE43/gamehub-go/internal/api"
	"github.com/MJE43/gamehub-go/internal/audio"
	"github.com/MJE43/gamehub-go/internal/config"
	"github.com/MJE43/gamehub-go/internal/hub"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "listen address (overrides "+config.Prefix+"ADDR)")
	seed := flag.String("seed", cfg.Seed, "fixed seed for reproducible sessions (overrides "+config.Prefix+"SEED)")
	mute := flag.Bool("mute", !cfg.AudioEnabled, "disable tone playback")
	flag.Parse()
	cfg.Addr = *addr
	cfg.Seed = *seed
	cfg.AudioEnabled = !*mute

	log.Printf("Starting Game Hub %s (Go %s)...", api.EngineVersion, runtime.Version())

	tones, err := audio.NewSpeaker(cfg.Audio())
	if err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		tones = audio.Silent{}
	}
	if sp, ok := tones.(*audio.Speaker); ok {
		defer sp.Close()
	}

	h := hub.New(hub.Options{
		Tones: tones,
		Seed:  cfg.Seed,
	})
	if cfg.Seed != "" {
		log.Printf("fixed seed enabled; sessions are reproducible")
	}

	srv := api.NewServer(h, api.Options{
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	bound, err := srv.Start(cfg.Addr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.Addr, err)
	}
	log.Printf("Game Hub ready at http://%s/api/v1", bound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Application is closing")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// ends every event stream
	h.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("Application exited normally")
}
