package config

import (
	"fmt"

	"github.com/san-kum/reactionnet/internal/temperature"
)

// BuildTemperatureModel constructs the temperature.Model named by the
// config's Temperature section, anchored at (tau0, t0).
func (c *Config) BuildTemperatureModel() (temperature.Model, error) {
	switch c.Temperature.Model {
	case "", "ideal_hydro":
		return temperature.IdealHydro{Tau0: c.Tau0, T0: c.T0}, nil
	case "constant":
		return temperature.Constant{T: c.T0}, nil
	case "power_law":
		return temperature.PowerLaw{Tau0: c.Tau0, T0: c.T0, Exponent: c.Temperature.Exponent}, nil
	default:
		return nil, fmt.Errorf("config: unknown temperature model %q", c.Temperature.Model)
	}
}
