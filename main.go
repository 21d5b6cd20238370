package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"lrucache/config"
	"lrucache/lru"
	"lrucache/trace"
)

// referenceScenario is replayed when no trace file is configured.
const referenceScenario = `put 1 1
put 2 2
get 1
put 3 3
get 2
put 4 4
get 1
get 3
get 4
`

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func readOps(cfg *config.Config) ([]trace.Op, error) {
	if cfg.Trace == "" {
		return trace.Parse(strings.NewReader(referenceScenario))
	}
	f, err := os.Open(cfg.Trace)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := trace.NewReader(f, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return trace.Parse(r)
}

// display shows the current cache state
func display(w io.Writer, c *lru.Cache[string, string]) {
	fmt.Fprint(w, "Cache (MRU -> LRU): ")
	for _, k := range c.Keys() {
		fmt.Fprintf(w, "[%s] ", k)
	}
	fmt.Fprintln(w)
}

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	tracePath := flag.String("trace", "", "operation script to replay (overrides the config)")
	capacity := flag.Int("capacity", 0, "cache capacity (overrides the config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *tracePath != "" {
		cfg.Trace = *tracePath
	}
	if *capacity != 0 {
		cfg.Capacity = *capacity
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cache, err := lru.New[string, string](cfg.Capacity)
	if err != nil {
		log.Fatal(err)
	}

	ops, err := readOps(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Trace == "" {
		logger.Info("no trace configured, replaying reference scenario")
	}
	logger.Info("LRU cache ready", "capacity", cache.Cap(), "ops", len(ops))

	res := trace.Replay(cache, ops, logger)
	for _, o := range res.Outcomes {
		fmt.Println(o)
	}
	display(os.Stdout, cache)

	logger.Info("replay finished",
		"gets", res.Gets,
		"hits", res.Hits,
		"misses", res.Misses,
		"puts", res.Puts,
		"evictions", res.Evictions,
		"deletes", res.Deletes,
	)
}
