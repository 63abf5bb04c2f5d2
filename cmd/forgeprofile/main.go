// Command forgeprofile exercises the World's hot paths — entity churn and
// cached queries — under pkg/profile's allocation profiler so allocation hot
// spots show up in a pprof memory profile.
//
//	go build ./cmd/forgeprofile
//	./forgeprofile
//	go tool pprof -http=":8000" -nodefraction=0.001 ./forgeprofile mem.pprof
package main

import (
	"github.com/pkg/profile"

	"github.com/kaelstrom/forgecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	const (
		rounds      = 50
		iterations  = 10000
		numEntities = 1000
	)
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iterations, numEntities)
	p.Stop()
}

func run(rounds, iterations, numEntities int) {
	for range rounds {
		w := forgecs.NewWorld(forgecs.WorldConfig{InitialEntityCapacity: numEntities})
		forgecs.RegisterType[position](w)
		forgecs.RegisterType[velocity](w)
		qs := forgecs.NewQuerySystem(
			forgecs.MustID[position](w),
			forgecs.MustID[velocity](w),
		)
		w.RegisterQuerySystem(qs)

		for range iterations {
			entities := make([]forgecs.Entity, 0, numEntities)
			for range numEntities {
				e, _ := forgecs.Create2(w, position{}, velocity{X: 1, Y: 1})
				entities = append(entities, e)
			}
			for _, r := range qs.Query(w) {
				pos, _ := forgecs.GetResult[position](w, r)
				vel, _ := forgecs.GetResult[velocity](w, r)
				pos.X += vel.X
				pos.Y += vel.Y
			}
			for _, e := range entities {
				w.Despawn(e)
			}
		}
	}
}
