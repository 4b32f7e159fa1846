// empcrud is a terminal front end for the employees API: it renders the
// collection as a table and drives the shared add/edit form.
//
//	EMPCRUD_API_URL=http://localhost:8080/api/employees go run ./cmd/empcrud
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aanand-mishra/employees-api/internal/client"
	"github.com/aanand-mishra/employees-api/internal/version"
	"github.com/aanand-mishra/employees-api/internal/view"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config configures the terminal client.
type Config struct {
	APIURL  string        `env:"EMPCRUD_API_URL" env-default:"http://localhost:8080/api/employees"`
	Timeout time.Duration `env:"EMPCRUD_TIMEOUT" env-default:"10s"`
	Debug   bool          `env:"EMPCRUD_DEBUG"`
}

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info("empcrud", "Terminal client for the employees API").String())
		return
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cannot read config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in := bufio.NewScanner(os.Stdin)
	ui := &terminal{in: in, out: os.Stdout}

	api := client.New(cfg.APIURL, client.CreateHTTPClient(log, cfg.Timeout), log)
	ctrl := view.NewController(api, ui, ui, log)

	ctx := context.Background()
	if err := ctrl.Mount(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "initial load failed: %v\n", err)
	}

	app := &app{ctrl: ctrl, ui: ui}
	app.run(ctx)
}
