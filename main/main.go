package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/strspan"
)

type Options struct {
	Iterations int
	MemProfile string
	PprofAddr  string
	Hold       time.Duration
}

func parseOptions() Options {
	var o Options
	flag.IntVar(&o.Iterations, "n", 10000, "loop iterations")
	flag.StringVar(&o.MemProfile, "memprofile", "mem.prof", "heap profile output, empty to skip")
	flag.StringVar(&o.PprofAddr, "pprof", "localhost:6060", "pprof listen address, empty to skip")
	flag.DurationVar(&o.Hold, "hold", 0, "keep the pprof server up after the run")
	flag.Parse()
	return o
}

func run(o Options) int {
	names := [][]byte{
		[]byte("azerty\x00"),
		[]byte("hello\x00"),
		[]byte("world\x00"),
		[]byte("random\x00\x00\x00"),
	}
	wide := []rune("wide\x00")
	key := strspan.FromLiteral("hello\x00")
	matches := 0
	for i := 0; i < o.Iterations; i++ {
		for _, name := range names {
			v := strspan.ConstEnsureZPtr(&name[0])
			if v.Equal(key) {
				matches++
			}
			z, err := strspan.NewZ(strspan.New(name[:v.Len()+1]))
			if err != nil {
				log.Fatal(err)
			}
			_ = strspan.Compare(z.AsSpan().Const(), key)
		}
		if n := strspan.ScanPtr(&wide[0]); n != 4 {
			log.Fatalf("wide scan: got %d", n)
		}
	}
	return matches
}

func main() {
	o := parseOptions()
	if o.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(o.PprofAddr, nil))
		}()
	}
	runtime.MemProfileRate = 1

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	matches := run(o)
	runtime.ReadMemStats(&after)
	log.Printf("iterations=%d matches=%d mallocs=%d", o.Iterations, matches, after.Mallocs-before.Mallocs)

	if o.MemProfile != "" {
		f, err := os.Create(o.MemProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
	if o.Hold > 0 {
		time.Sleep(o.Hold)
	}
}
