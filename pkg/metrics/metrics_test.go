package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/memkit/pkg/errors"
	"github.com/ajitpratap0/memkit/pkg/pool"
	"github.com/ajitpratap0/memkit/pkg/testutil"
)

func TestPoolCollector_CountsTraffic(t *testing.T) {
	reg := prometheus.NewRegistry()
	pc := NewPoolCollector(reg, "test")
	pools := testutil.NewRegistry(t, pool.WithObserver(pc))

	l := pool.GetList[int](pools) // miss
	pool.ReturnList(pools, l)     // retained
	l = pool.GetList[int](pools)  // hit
	pool.ReturnList(pools, l)

	labels := []string{"list", "int", "false"}
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.gets.WithLabelValues(append(labels, "miss")...)))
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.gets.WithLabelValues(append(labels, "hit")...)))
	assert.Equal(t, 2.0, promtest.ToFloat64(pc.returns.WithLabelValues(append(labels, "retained")...)))

	n, err := promtest.GatherAndCount(reg, "test_pool_gets_total", "test_pool_returns_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPoolCollector_Dropped(t *testing.T) {
	opts := pool.DefaultOptions()
	opts.MaxRetained = 1
	pc := NewPoolCollector(nil, "test")
	pools := testutil.NewRegistry(t, pool.WithObserver(pc), pool.WithOptions(opts))

	a, b := pool.GetStack[string](pools), pool.GetStack[string](pools)
	pool.ReturnStack(pools, a)
	pool.ReturnStack(pools, b)

	labels := []string{"stack", "string", "false"}
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.returns.WithLabelValues(append(labels, "retained")...)))
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.returns.WithLabelValues(append(labels, "dropped")...)))
}

func TestRegistryCollector(t *testing.T) {
	pools := testutil.NewRegistry(t)
	rc, err := NewRegistryCollector(pools, "test")
	require.NoError(t, err)

	q := pool.GetQueue[int](pools)
	pool.ReturnQueue(pools, q)
	pool.GetSet[string](pools)

	expected := `
# HELP test_pool_idle Instances cached and ready for reuse
# TYPE test_pool_idle gauge
test_pool_idle{concurrent="false",kind="queue",type="int"} 1
test_pool_idle{concurrent="false",kind="set",type="string"} 0
# HELP test_pool_in_use Instances handed out and not yet returned
# TYPE test_pool_in_use gauge
test_pool_in_use{concurrent="false",kind="queue",type="int"} 0
test_pool_in_use{concurrent="false",kind="set",type="string"} 1
`
	err = promtest.CollectAndCompare(rc, strings.NewReader(expected), "test_pool_idle", "test_pool_in_use")
	assert.NoError(t, err)
	assert.Equal(t, 6, promtest.CollectAndCount(rc))
}

func TestNewRegistryCollector_NilRegistry(t *testing.T) {
	_, err := NewRegistryCollector(nil, "test")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNullArgument))
	assert.Equal(t, "registry", errors.Argument(err))
}

func TestPoolCollector_Concurrent(t *testing.T) {
	pc := NewPoolCollector(nil, "test")
	opts := pool.DefaultOptions()
	opts.Concurrent = true
	pools := testutil.NewRegistry(t, pool.WithObserver(pc), pool.WithOptions(opts))

	const workers, iterations = 8, 500
	testutil.RunParallel(workers, func(int) {
		for i := 0; i < iterations; i++ {
			pool.ReturnArray(pools, pool.GetArray[byte](pools, 64))
		}
	})

	labels := []string{"array", "uint8", "true"}
	gets := promtest.ToFloat64(pc.gets.WithLabelValues(append(labels, "hit")...)) +
		promtest.ToFloat64(pc.gets.WithLabelValues(append(labels, "miss")...))
	assert.Equal(t, float64(workers*iterations), gets)
	assert.Equal(t, float64(workers*iterations),
		promtest.ToFloat64(pc.returns.WithLabelValues(append(labels, "retained")...)))
}
