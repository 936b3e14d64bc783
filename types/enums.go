package types

// Granularity is the drip cadence of a proto config, in seconds.
type Granularity uint64

const (
	Minutely Granularity = 60
	Hourly   Granularity = 3_600
	Daily    Granularity = 86_400
	Weekly   Granularity = 604_800
	Monthly  Granularity = 2_592_000
)

func (g Granularity) Seconds() uint64 {
	return uint64(g)
}
