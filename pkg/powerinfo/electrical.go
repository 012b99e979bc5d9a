package powerinfo

import (
	"github.com/sirupsen/logrus"
)

// EstimatedPercent estimates the fuel level of a device from its
// instantaneous electrical readings, for trees whose driver does not report
// capacity directly. resistanceMOhm is the assumed series resistance of the
// battery. The boolean is false when the voltage cannot be read.
//
// voltage_now and current_now are reported in microvolts and microamps; the
// chemistry model works in millivolts and milliamps.
func (r *Reporter) EstimatedPercent(device string, resistanceMOhm int) (int, bool) {
	uV, ok := r.tree.ReadInt(device, "voltage_now")
	if !ok {
		return 0, false
	}

	// An unreadable current means no load correction, not a failure.
	uA, _ := r.tree.ReadInt(device, "current_now")

	sample := ElectricalSample{
		VoltageMV:      uV / 1000,
		CurrentMA:      uA / 1000,
		ResistanceMOhm: resistanceMOhm,
	}

	lvl := sample.FuelLevel()
	logrus.WithFields(logrus.Fields{
		"device":  device,
		"mV":      sample.VoltageMV,
		"mA":      sample.CurrentMA,
		"percent": lvl,
	}).Trace("Estimated fuel level")

	return lvl, true
}

// ACOnline reports whether any mains adapter in the tree is online. It does
// not affect battery selection; callers use it to qualify a Discharging
// report.
func (r *Reporter) ACOnline() bool {
	devices, err := r.tree.Devices()
	if err != nil {
		return false
	}

	for _, name := range devices {
		if typ, ok := r.tree.ReadAttribute(name, "type"); !ok || typ != "Mains" {
			continue
		}
		if online, ok := r.tree.ReadAttribute(name, "online"); ok && online == "1" {
			return true
		}
	}

	return false
}
