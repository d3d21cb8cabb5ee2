package solar

import "math"

// defaultCurve is the clear-sky generation shape across the daylight window,
// normalized so the solar-noon slot equals 1.0. Slot 0 is sunrise, the last
// slot is sunset. The values come from the reference installation's hourly
// averages and are a tunable constant, not user configuration.
var defaultCurve = []float64{
	0, 0.1, 0.3, 0.5, 0.7, 0.8, 0.9, 1.0, 0.9, 0.8, 0.7, 0.5, 0.3, 0.1, 0,
}

// Profile maps a position inside the daylight window to a fraction of panel
// capacity. The curve is stretched over whatever window the configuration
// defines, with linear interpolation between slots.
type Profile struct {
	curve []float64
}

// DefaultProfile returns the built-in clear-sky profile.
func DefaultProfile() Profile {
	return Profile{curve: defaultCurve}
}

// NewProfile builds a profile from a custom slot curve. Only used by tests
// and tooling; the simulator runs on DefaultProfile.
func NewProfile(curve []float64) Profile {
	return Profile{curve: curve}
}

// GenerationAt returns the instantaneous generation in watts for the given
// hour of day. Hours outside [sunrise, sunset) generate nothing. Pure
// function of its inputs.
func (p Profile) GenerationAt(hour, sunrise, sunset int, panelCapacityW float64) float64 {
	if sunset <= sunrise || hour < sunrise || hour >= sunset {
		return 0
	}
	u := float64(hour-sunrise) / float64(sunset-sunrise)
	return p.factorAt(u) * panelCapacityW
}

// factorAt linearly interpolates the curve at normalized position u in [0, 1].
func (p Profile) factorAt(u float64) float64 {
	if len(p.curve) == 0 {
		return 0
	}
	if len(p.curve) == 1 {
		return p.curve[0]
	}
	if u <= 0 {
		return p.curve[0]
	}
	if u >= 1 {
		return p.curve[len(p.curve)-1]
	}

	pos := u * float64(len(p.curve)-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	frac := pos - float64(lo)
	return p.curve[lo]*(1-frac) + p.curve[hi]*frac
}

// PeakHour returns the hour of day at which the profile peaks for the given
// window. With the default symmetric curve this is solar noon.
func (p Profile) PeakHour(sunrise, sunset int) int {
	best := sunrise
	var bestFactor float64
	for h := sunrise; h < sunset; h++ {
		f := p.GenerationAt(h, sunrise, sunset, 1)
		if f > bestFactor {
			bestFactor = f
			best = h
		}
	}
	return best
}
