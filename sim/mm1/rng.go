package mm1

import (
	"hash/fnv"
	"math/rand"
)

const (
	// SubsystemArrivals drives interarrival times. It uses the master seed directly.
	SubsystemArrivals = "arrivals"

	// SubsystemService drives service times.
	SubsystemService = "service"
)

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemArrivals: uses the seed directly
//   - For all other subsystems: seed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := p.seed
	if name != SubsystemArrivals {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the seed this PartitionedRNG was created from.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Sampler draws the random durations of the model.
type Sampler interface {
	NextInterarrival() float64
	NextService() float64
}

// ExponentialSampler draws exponential interarrival and service times from
// independent streams.
type ExponentialSampler struct {
	arrivalRate float64
	serviceRate float64
	arrivals    *rand.Rand
	service     *rand.Rand
}

// NewExponentialSampler returns a sampler for cfg's rates seeded from cfg.Seed.
func NewExponentialSampler(cfg Config) *ExponentialSampler {
	rng := NewPartitionedRNG(cfg.Seed)
	return &ExponentialSampler{
		arrivalRate: cfg.ArrivalRate,
		serviceRate: cfg.ServiceRate,
		arrivals:    rng.ForSubsystem(SubsystemArrivals),
		service:     rng.ForSubsystem(SubsystemService),
	}
}

// NextInterarrival returns the time until the next arrival.
func (s *ExponentialSampler) NextInterarrival() float64 {
	return s.arrivals.ExpFloat64() / s.arrivalRate
}

// NextService returns the duration of the next service.
func (s *ExponentialSampler) NextService() float64 {
	return s.service.ExpFloat64() / s.serviceRate
}
