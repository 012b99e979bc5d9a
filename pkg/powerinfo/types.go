// Package powerinfo reports the host's battery state from the power-supply
// reporting tree. It contains:
//
//   - BatteryState: the closed set of charging states a report can carry
//   - Reporter: the scan that picks the most representative system battery
//   - EstimateFuelLevel: a chemistry-model fuel gauge for trees whose driver
//     does not report capacity directly
//
// All reads are point-in-time; nothing is cached between calls.
package powerinfo

// BatteryState represents the charging state of the reported battery.
type BatteryState int

const (
	// NoBattery indicates no system battery is present.
	NoBattery BatteryState = iota
	// Charging indicates the battery is charging.
	Charging
	// Discharging indicates the host is running on battery.
	Discharging
	// Charged indicates the battery is full or intentionally not charging.
	Charged
	// Unknown indicates the state could not be determined.
	Unknown
)

// String returns a human-readable form of the state.
func (s BatteryState) String() string {
	switch s {
	case NoBattery:
		return "NoBattery"
	case Charging:
		return "Charging"
	case Discharging:
		return "Discharging"
	case Charged:
		return "Charged"
	}
	return "Unknown"
}

// PowerInfo is a point-in-time battery report.
// Units:
// - Seconds: estimated seconds of runtime remaining (-1 = unknown)
// - Percent: remaining charge in percent, 0-100 (-1 = unknown)
type PowerInfo struct {
	State   BatteryState `json:"state"`
	Seconds int          `json:"seconds"`
	Percent int          `json:"percent"`
}

// ElectricalSample holds raw electrical measurements taken at the battery
// terminals.
// Units:
// - VoltageMV: millivolts, measured outside the battery
// - CurrentMA: milliamps flowing out of the battery
// - ResistanceMOhm: assumed series resistance of the battery, milliohms
type ElectricalSample struct {
	VoltageMV      int `json:"voltage_mv"`
	CurrentMA      int `json:"current_ma"`
	ResistanceMOhm int `json:"resistance_mohm"`
}

// Health holds point-in-time battery identity and wear information.
// HealthPct is remaining full-charge capacity relative to the design
// capacity (-1 = unknown).
type Health struct {
	Manufacturer        string `json:"manufacturer"`
	Model               string `json:"model"`
	Technology          string `json:"technology"`
	CycleCount          int    `json:"cycle_count"`
	ChargeFullUAH       int    `json:"charge_full_uah"`
	ChargeFullDesignUAH int    `json:"charge_full_design_uah"`
	HealthPct           int    `json:"health_pct"`
}
