package cmd

import (
	"fmt"

	"github.com/etnz/footprint"
	"go.uber.org/zap"
)

// loadDirect loads the direct intensity table. If emissions is set, it names a
// table of emission intensities (kg CO₂-eq per unit) converted to MSA-loss and
// merged into the direct table as "msa_<column>".
func loadDirect(emissions string) (*footprint.Table, error) {
	direct, err := decodeFile(config.Files.Intensity, footprint.DecodeTable)
	if err != nil {
		return nil, err
	}
	if emissions == "" {
		return direct, nil
	}
	co2, err := decodeFile(emissions, footprint.DecodeTable)
	if err != nil {
		return nil, err
	}
	names := co2.Columns()
	for i, c := range names {
		names[i] = "msa_" + c
	}
	msa, err := footprint.EmissionsToMSA(co2, config.GHGFactor, names...)
	if err != nil {
		return nil, fmt.Errorf("cannot convert emissions: %w", err)
	}
	logger.Debug("emissions converted", zap.Float64("factor", config.GHGFactor), zap.Strings("columns", names))
	return footprint.Merge(direct, msa)
}

// loadLeontief loads the Leontief inverse.
func loadLeontief() (*footprint.Leontief, error) {
	return decodeFile(config.Files.Leontief, footprint.DecodeLeontief)
}

// propagate loads the direct table and the Leontief inverse, and propagates.
func propagate(emissions string) (direct, total *footprint.Table, err error) {
	direct, err = loadDirect(emissions)
	if err != nil {
		return nil, nil, err
	}
	l, err := loadLeontief()
	if err != nil {
		return nil, nil, err
	}
	total, err = footprint.PropagateConcurrent(direct, l, config.Workers)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("propagated",
		zap.Int("sectors", total.Len()),
		zap.Strings("pressures", total.Columns()),
		zap.Int("workers", config.Workers))
	return direct, total, nil
}
