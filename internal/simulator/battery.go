package simulator

// Battery tracks stored energy in watt-hours, clamped to [0, capacity].
// Over-charge and over-discharge are normal operating conditions, never
// errors: the clamped delta tells the caller how much energy actually moved,
// and the difference against the request is curtailed or unmet energy.
type Battery struct {
	CapacityWh float64
	ChargeWh   float64
}

// NewBattery creates an empty battery.
func NewBattery(capacityWh float64) *Battery {
	return &Battery{CapacityWh: capacityWh}
}

// ApplyDelta adds wh to the stored charge (negative wh discharges), clamping
// the result to [0, capacity]. Returns the delta actually applied, which has
// the same sign as the request but may be smaller in magnitude.
func (b *Battery) ApplyDelta(wh float64) float64 {
	next := b.ChargeWh + wh
	if next > b.CapacityWh {
		next = b.CapacityWh
	}
	if next < 0 {
		next = 0
	}
	applied := next - b.ChargeWh
	b.ChargeWh = next
	return applied
}

// Headroom returns how much more energy the battery can accept.
func (b *Battery) Headroom() float64 {
	return b.CapacityWh - b.ChargeWh
}

// Available returns how much energy the battery can currently deliver.
func (b *Battery) Available() float64 {
	return b.ChargeWh
}
