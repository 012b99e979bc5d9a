package powerinfo

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lehmancurtis147/libbattery/pkg/sysfs"
)

// Reporter produces battery reports from a power-supply tree.
type Reporter struct {
	tree *sysfs.Tree
}

// NewReporter returns a Reporter over the standard power-supply tree.
func NewReporter() *Reporter {
	return &Reporter{tree: sysfs.New()}
}

// NewReporterWithTree returns a Reporter over an arbitrary tree.
func NewReporterWithTree(t *sysfs.Tree) *Reporter {
	return &Reporter{tree: t}
}

// GetPowerInfo scans the power-supply tree and reports the single most
// representative system battery. A host with no battery at all is a valid
// report with State NoBattery; the returned error is non-nil only when the
// tree itself cannot be enumerated, in which case the report must not be
// consulted.
func (r *Reporter) GetPowerInfo() (PowerInfo, error) {
	logrus.Tracef("GetPowerInfo called")

	devices, err := r.tree.Devices()
	if err != nil {
		return PowerInfo{}, err
	}

	// Assume we're just plugged in until a battery shows up.
	best := PowerInfo{State: NoBattery, Seconds: -1, Percent: -1}

	for _, name := range devices {
		typ, ok := r.tree.ReadAttribute(name, "type")
		if !ok {
			continue // don't know what we're looking at
		}
		if typ != "Battery" {
			continue // we don't care about UPS, mains adapters and such
		}

		// A scope of "device" is something like a game controller
		// reporting its own battery, not something that powers the
		// host. Most system batteries list no scope at all.
		if scope, ok := r.tree.ReadAttribute(name, "scope"); ok && scope == "device" {
			continue
		}

		cand := PowerInfo{
			State:   r.readState(name),
			Seconds: r.readSeconds(name),
			Percent: r.readPercent(name),
		}

		if betterCandidate(cand, best) {
			logrus.WithFields(logrus.Fields{
				"device":  name,
				"state":   cand.State,
				"seconds": cand.Seconds,
				"percent": cand.Percent,
			}).Debug("Selected battery candidate")

			best = cand
		}
	}

	return best, nil
}

// readState determines the battery state for one device node. A present
// reading of "0" is authoritative and short-circuits status entirely;
// drivers that don't offer present are assumed to have the battery in.
func (r *Reporter) readState(device string) BatteryState {
	if present, ok := r.tree.ReadAttribute(device, "present"); ok && present == "0" {
		return NoBattery
	}

	status, ok := r.tree.ReadAttribute(device, "status")
	if !ok {
		return Unknown
	}

	switch status {
	case "Charging":
		return Charging
	case "Discharging":
		return Discharging
	case "Full", "Not charging":
		return Charged
	}
	return Unknown
}

// readPercent reads the reported capacity, clamped to 100. -1 = unknown.
// A reported 0 is a real value, not an unknown.
func (r *Reporter) readPercent(device string) int {
	pct, ok := r.tree.ReadInt(device, "capacity")
	if !ok {
		return -1
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// readSeconds reads time_to_empty_now. The reporting convention documents 0
// as "unknown", not "zero seconds left". -1 = unknown.
func (r *Reporter) readSeconds(device string) int {
	secs, ok := r.tree.ReadInt(device, "time_to_empty_now")
	if !ok || secs <= 0 {
		return -1
	}
	return secs
}

// firstBattery returns the name of the first system battery in the tree.
func (r *Reporter) firstBattery() (string, error) {
	devices, err := r.tree.Devices()
	if err != nil {
		return "", errors.Wrap(err, "failed to open power-supply tree")
	}

	for _, name := range devices {
		typ, ok := r.tree.ReadAttribute(name, "type")
		if !ok || typ != "Battery" {
			continue
		}
		if scope, ok := r.tree.ReadAttribute(name, "scope"); ok && scope == "device" {
			continue
		}
		return name, nil
	}

	return "", ErrNoBattery
}
