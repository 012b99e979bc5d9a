package powerinfo

import (
	"github.com/sirupsen/logrus"
)

// Health reads identity and wear information for a named battery device
// node. It returns ErrNoBattery when the node is not a system battery.
func (r *Reporter) Health(device string) (*Health, error) {
	logrus.Tracef("Health called for %s", device)

	if typ, ok := r.tree.ReadAttribute(device, "type"); !ok || typ != "Battery" {
		return nil, ErrNoBattery
	}

	h := &Health{}
	h.Manufacturer, _ = r.tree.ReadAttribute(device, "manufacturer")
	h.Model, _ = r.tree.ReadAttribute(device, "model_name")
	h.Technology, _ = r.tree.ReadAttribute(device, "technology")
	h.CycleCount, _ = r.tree.ReadInt(device, "cycle_count")
	h.ChargeFullUAH, _ = r.tree.ReadInt(device, "charge_full")
	h.ChargeFullDesignUAH, _ = r.tree.ReadInt(device, "charge_full_design")

	h.HealthPct = -1
	if h.ChargeFullUAH > 0 && h.ChargeFullDesignUAH > 0 {
		pct := (100 * h.ChargeFullUAH) / h.ChargeFullDesignUAH
		if pct > 100 {
			pct = 100
		}
		h.HealthPct = pct
	}

	return h, nil
}

// FirstBatteryHealth returns health information for the first system
// battery in the tree, skipping device-scoped peripherals.
func (r *Reporter) FirstBatteryHealth() (*Health, error) {
	name, err := r.firstBattery()
	if err != nil {
		return nil, err
	}
	return r.Health(name)
}
