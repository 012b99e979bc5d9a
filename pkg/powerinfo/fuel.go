package powerinfo

// EstimateFuelLevel calculates the remaining fuel level (in %) of a LiIon
// battery assuming a standard chemistry model. The curve is an empirical fit
// of cell voltage to state of charge, with a linear segment covering the
// near-empty region where the fitted formula goes undefined.
//
// mV is the voltage measured outside the battery, mA the current flowing out
// of it, and mOhm the assumed series resistance. The result is always within
// [0, 100]; there are no error conditions.
func EstimateFuelLevel(mV, mA, mOhm int) int {
	// Internal battery voltage is higher than measured when discharging.
	mV += (mOhm * mA) / 1000

	u := 3870000 - (14523 * (37835 - 10*mV))

	// Linear approximation below 3.756V => 19.66%, assuming 3.3V => 0%.
	if u < 0 {
		lvl := ((mV - 3300) * 1966) / ((3756 - 3300) * 100)
		if lvl < 0 {
			lvl = 0
		}
		return lvl
	}

	lvl := (1966 + isqrt(u)) / 100
	if lvl > 100 {
		lvl = 100
	}
	return lvl
}

// FuelLevel runs the fuel estimator over the sample.
func (s ElectricalSample) FuelLevel() int {
	return EstimateFuelLevel(s.VoltageMV, s.CurrentMA, s.ResistanceMOhm)
}

// isqrt returns the floor of the square root of n. Negative input yields 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}

	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
