package arraystesting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestContext struct {
	Log   logger.Logger
	Label string
	T     *testing.T

	rng *rand.Rand
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // can be "", defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}

	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	// The uuid keeps labels distinct when tests run in parallel; the seed, not
	// the label, determines the data.
	c.Label = cfg.TestLabelPrefix + "-" + uuid.NewString()
	c.Log = logger.Sugar.WithServiceName(c.Label)
	c.rng = rand.New(rand.NewSource(cfg.Seed))

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomValues returns n values drawn from the full byte range.
func (c *TestContext) RandomValues(n int) []byte {
	values := make([]byte, n)
	for i := range values {
		values[i] = byte(c.rng.Intn(256))
	}
	return values
}

// SortedValues returns n random values in ascending unsigned order. Duplicates
// are likely for large n.
func (c *TestContext) SortedValues(n int) []byte {
	values := c.RandomValues(n)
	slices.Sort(values)
	return values
}

// DistinctSortedValues returns n distinct values in ascending unsigned order.
// n is capped at 256.
func (c *TestContext) DistinctSortedValues(n int) []byte {
	n = min(n, 256)
	perm := c.rng.Perm(256)[:n]
	values := make([]byte, n)
	for i, v := range perm {
		values[i] = byte(v)
	}
	slices.Sort(values)
	return values
}

// Intn returns a value in [0, n) from the context's seeded source.
func (c *TestContext) Intn(n int) int { return c.rng.Intn(n) }
