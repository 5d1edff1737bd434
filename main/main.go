package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/rc"
	"github.com/rawbytedev/rc/pool"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	text := rc.FromString("Hello, world!")
	for i := 0; i < 10000; i++ {
		clones := make([]*rc.Rc[string], 0, 8)
		for j := 0; j < 8; j++ {
			clones = append(clones, text.Clone())
		}
		for _, c := range clones {
			c.Release()
		}
	}
	text.Release()

	for i := 0; i < 10000; i++ {
		buf := pool.Bytes(pool.Size4K)
		copy(buf.Value(), "pooled payload")
		d := buf.Clone()
		buf.Release()
		d.Release()
	}

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
