// Command goperf-loadtest exercises the instrumentation hot path under
// concurrency and prints the merged report, optionally publishing snapshots to
// Redis through the background dispatcher.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	goPerf "github.com/MrEthical07/goPerf"
	"github.com/MrEthical07/goPerf/export/redisink"
)

func main() {
	var (
		workers   = flag.Int("workers", 8, "number of concurrent workers")
		intervals = flag.Int("intervals", 10000, "finalized intervals per worker per region")
		flop      = flag.Int64("flop", 2_000_000, "work units per interval for the compute region")
		spin      = flag.Duration("spin", 5*time.Microsecond, "busy work per interval")
		verbose   = flag.Bool("verbose", false, "debug logging to stderr")
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
	)
	flag.Parse()

	if *workers <= 0 || *intervals <= 0 {
		fmt.Fprintln(os.Stderr, "workers and intervals must be > 0")
		os.Exit(2)
	}

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		cleanup = mr.Close
		fmt.Printf("using embedded miniredis at %s\n", addr)
	}
	if cleanup != nil {
		defer cleanup()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	sink, err := redisink.New(client, redisink.WithMaxLen(1024))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create redis sink: %v\n", err)
		os.Exit(1)
	}

	cfg := goPerf.DefaultConfig()
	cfg.Verbose = *verbose
	cfg.Report.Identification = true
	cfg.Dispatch.Enabled = true
	cfg.Dispatch.Interval = 250 * time.Millisecond

	builder := goPerf.New().WithConfig(cfg).WithReportSink(sink)
	if *verbose {
		builder = builder.WithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	}
	registry, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build registry: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(*workers)
	for i := 0; i < *workers; i++ {
		go func() {
			defer wg.Done()
			local := registry.Local()
			compute := local.Get("compute", *flop)
			overhead := local.GetBlock("compute", "bookkeeping")
			for j := 0; j < *intervals; j++ {
				func() {
					g := goPerf.NewGuard(compute, true)
					defer g.Close()
					busyWork(*spin)
				}()
				overhead.Enter()
				overhead.Leave(false)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	registry.Publish()
	registry.Report(os.Stdout)
	registry.Close()

	combined := registry.GetCombined("compute")
	fmt.Printf("ran %d workers x %d intervals in %s (combined count %d)\n",
		*workers, *intervals, elapsed.Round(time.Millisecond), combined.Count())
	fmt.Printf("dispatcher dropped %d snapshots\n", registry.Dropped())
}

func busyWork(d time.Duration) {
	start := goPerf.TimeCounter()
	ticks := int64(d)
	for goPerf.TimeCounter()-start < ticks {
	}
}
