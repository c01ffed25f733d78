package api_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/api"
)

func TestGate_FiresOnce(t *testing.T) {
	var fired atomic.Int32
	gate := api.NewGate(func() { fired.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gate.Fire()
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), fired.Load())
}

func TestGate_ReArm(t *testing.T) {
	var fired int
	gate := api.NewGate(func() { fired++ })

	gate.Fire()
	gate.Fire()
	require.Equal(t, 1, fired)

	gate.Arm()
	gate.Fire()
	require.Equal(t, 2, fired)
}
