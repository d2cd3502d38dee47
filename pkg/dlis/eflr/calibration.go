package eflr

// Class set types of the calibration family.
const (
	SetTypeCalibration            = "CALIBRATION"
	SetTypeCalibrationCoefficient = "CALIBRATION-COEFFICIENT"
	SetTypeCalibrationMeasurement = "CALIBRATION-MEASUREMENT"
)

// CalibrationCoefficient records coefficients, references, and tolerances
// used in the calibration of channels.
type CalibrationCoefficient struct {
	*Item
}

// NewCalibrationCoefficientSet creates a calibration-coefficient set.
func NewCalibrationCoefficientSet(name string) *Set {
	return NewSet(SetTypeCalibrationCoefficient, LRStatic, name)
}

// NewCalibrationCoefficient creates a calibration-coefficient object.
func NewCalibrationCoefficient(set *Set, name string) *CalibrationCoefficient {
	it := newItem(set, name,
		identAttr("LABEL"),
		numericListAttr("COEFFICIENTS", 0),
		numericListAttr("REFERENCES", 0),
		numericListAttr("PLUS-TOLERANCES", 0),
		numericListAttr("MINUS-TOLERANCES", 0),
	)
	return &CalibrationCoefficient{Item: it}
}

// CalibrationMeasurement records measurements, references, and tolerances
// used to compute calibration coefficients.
type CalibrationMeasurement struct {
	*Item
}

// NewCalibrationMeasurementSet creates a calibration-measurement set.
func NewCalibrationMeasurementSet(name string) *Set {
	return NewSet(SetTypeCalibrationMeasurement, LRStatic, name)
}

// NewCalibrationMeasurement creates a calibration-measurement object.
func NewCalibrationMeasurement(set *Set, name string) *CalibrationMeasurement {
	it := newItem(set, name,
		identAttr("PHASE"),
		objrefAttr("MEASUREMENT-SOURCE"),
		identAttr("TYPE"),
		dimensionAttr("DIMENSION"),
		refListAttr("AXIS"),
		measurementAttr("MEASUREMENT"),
		integerAttr("SAMPLE-COUNT", 0),
		measurementAttr("MAXIMUM-DEVIATION"),
		measurementAttr("STANDARD-DEVIATION"),
		dtimeAttr("BEGIN-TIME"),
		numericAttr("DURATION", 0),
		measurementAttr("REFERENCE"),
		measurementAttr("STANDARD"),
		measurementAttr("PLUS-TOLERANCE"),
		measurementAttr("MINUS-TOLERANCE"),
	)
	return &CalibrationMeasurement{Item: it}
}

// Phase returns the declared measurement phase, empty when unset.
func (m *CalibrationMeasurement) Phase() string {
	return m.Attr("PHASE").FirstString()
}

// Calibration identifies the measurements and coefficients participating
// in the calibration of channels.
type Calibration struct {
	*Item
}

// NewCalibrationSet creates a calibration set.
func NewCalibrationSet(name string) *Set {
	return NewSet(SetTypeCalibration, LRStatic, name)
}

// NewCalibration creates a calibration object registered with the set.
func NewCalibration(set *Set, name string) *Calibration {
	it := newItem(set, name,
		refListAttr("CALIBRATED-CHANNELS"),
		refListAttr("UNCALIBRATED-CHANNELS"),
		refListAttr("COEFFICIENTS"),
		refListAttr("MEASUREMENTS"),
		refListAttr("PARAMETERS"),
		identAttr("METHOD"),
	)
	return &Calibration{Item: it}
}
