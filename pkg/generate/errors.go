package generate

import (
	errs "github.com/matzehuels/graphgen/pkg/errors"
)

// Method tags prefixed to error messages.
const (
	methodGrid  = "Grid"
	methodDense = "Dense"
)

// configErrorf reports an impossible request from method.
func configErrorf(method, format string, args ...any) error {
	return errs.New(errs.ErrCodeConfiguration, method+": "+format, args...)
}

// checkWeights validates the weight range and, when edges will be drawn with
// varying weights, the random source.
func checkWeights(method string, cfg config, drawsEdges bool) error {
	if err := errs.ValidateWeightRange(cfg.minWeight, cfg.maxWeight); err != nil {
		return errs.Wrap(errs.ErrCodeConfiguration, err, "%s", method)
	}
	if drawsEdges && cfg.rng == nil && cfg.minWeight != cfg.maxWeight {
		return configErrorf(method, "random source is required for weights in [%d, %d]", cfg.minWeight, cfg.maxWeight)
	}
	return nil
}
