// Command arena-stress measures all-pairs collision throughput at various
// entity counts, for tuning how many tanks an arena tick can carry.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"tankarena/internal/physics"
)

const iterations = 10

func main() {
	for _, count := range []int{50, 100, 250, 500, 1000, 2000} {
		testAllPairs(count)
	}
}

func testAllPairs(count int) {
	rng := rand.New(rand.NewSource(42))

	// Spawn area scales with count to keep density roughly constant.
	area := float32(50) + float32(count)/10

	boxes := make([]physics.OBB, count)
	for i := range boxes {
		center := mgl32.Vec3{
			rng.Float32()*area - area/2,
			0,
			rng.Float32()*area - area/2,
		}
		half := mgl32.Vec3{
			0.5 + rng.Float32()*1.5,
			1,
			0.5 + rng.Float32()*1.5,
		}
		boxes[i] = physics.NewOBB(center, half, rng.Float32()*6.28318)
	}

	var checks, hits int
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		checks = 0
		hits = 0
		for i := 0; i < count; i++ {
			for j := i + 1; j < count; j++ {
				checks++
				if !physics.IsCollidingHorizontal(&boxes[i], &boxes[j]) {
					continue
				}
				hits++
				if _, _, ok := physics.TryGetPushOutAxisAndDistance(&boxes[i], &boxes[j]); !ok {
					panic("colliding pair produced no push-out axis")
				}
			}
		}
	}
	elapsed := time.Since(start) / iterations

	perCheck := float64(elapsed.Nanoseconds()) / float64(checks)
	fmt.Printf("%5d boxes: %7d pairs, %5d colliding, %8v/frame, %.0f ns/pair\n",
		count, checks, hits, elapsed, perCheck)
}
