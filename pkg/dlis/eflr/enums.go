package eflr

// Standard enumerations from RP66 v1. Process status, calibration
// measurement phase, properties, and zone domain reject values outside
// these sets outright; frame index type, equipment type and location, and
// units accept them with a warning by default and reject them in
// high-compatibility mode. See the validation layer in package dlis.

// Frame index types allowed by the standard.
const (
	IndexAngularDrift  = "ANGULAR-DRIFT"
	IndexBoreholeDepth = "BOREHOLE-DEPTH"
	IndexNonStandard   = "NON-STANDARD"
	IndexRadialDrift   = "RADIAL-DRIFT"
	IndexVerticalDepth = "VERTICAL-DEPTH"
)

// Zone domains.
const (
	ZoneBoreholeDepth = "BOREHOLE-DEPTH"
	ZoneTime          = "TIME"
	ZoneVerticalDepth = "VERTICAL-DEPTH"
)

// Process statuses.
const (
	ProcessComplete   = "COMPLETE"
	ProcessAborted    = "ABORTED"
	ProcessInProgress = "IN-PROGRESS"
)

// Calibration measurement phases.
const (
	PhaseAfter  = "AFTER"
	PhaseBefore = "BEFORE"
	PhaseMaster = "MASTER"
)

var frameIndexTypes = stringSet(
	IndexAngularDrift, IndexBoreholeDepth, IndexNonStandard,
	IndexRadialDrift, IndexVerticalDepth,
)

var zoneDomains = stringSet(ZoneBoreholeDepth, ZoneTime, ZoneVerticalDepth)

var processStatuses = stringSet(ProcessComplete, ProcessAborted, ProcessInProgress)

var calibrationPhases = stringSet(PhaseAfter, PhaseBefore, PhaseMaster)

// properties allowed for Channel, Computation, and Process objects.
var propertyValues = stringSet(
	"AVERAGED", "CALIBRATED", "CHANGED-INDEX", "COMPUTED", "DEPTH-MATCHED",
	"DERIVED", "FILTERED", "HOLE-SIZE-CORRECTED", "INCLINOMETRY-CORRECTD",
	"LITHOLOGY-CORRECTED", "LOCAL-COMPUTATION", "LOCALLY-DEFINED", "MODELLED",
	"MUDCAKE-CORRECTED", "NORMALIZED", "OVER-SAMPLED", "PATCHED",
	"PRESSURE-CORRECTED", "RE-SAMPLED", "SALINITY-CORRECTED",
	"SAMPLED-DOWNWARD", "SAMPLED-UPWARD", "SPEED-CORRECTED", "SPLICED",
	"SQUARED", "STACKED", "STANDARD-DEVIATION", "STANDOFF-CORRECTED",
	"TEMPERATURE-CORRECTED", "UNDER-SAMPLED",
)

var equipmentTypes = stringSet(
	"Adapter", "Board", "Bottom-Nose", "Bridle", "Cable", "Calibrator",
	"Cartridge", "Centralizer", "Chamber", "Cushion", "Depth-Device",
	"Display", "Drawer", "Excentralizer", "Explosive-Source", "Flask",
	"Geophone", "Gun", "Head", "Housing", "Jig", "Joint", "Nuclear-Detector",
	"Packer", "Pad", "Pane", "Positioning", "Printer", "Radioactive-Source",
	"Shield", "Simulator", "Skid", "Sonde", "Spacer", "Standoff", "System",
	"Tool", "Tool-Module", "Transducer", "Vibration-Source",
)

var equipmentLocations = stringSet("Logging-System", "Remote", "Rig", "Well")

// standardUnits lists every unit symbol the standard declares explicitly.
var standardUnits = stringSet(
	"A", "K", "cd", "dAPI", "dB", "gAPI", "kg", "m", "mol", "nAPI", "rad",
	"s", "sr", "Btu", "C", "D", "GPa", "Gal", "Hz", "J", "L", "MHz", "MPa",
	"MeV", "Mg", "Mpsi", "N", "Oe", "P", "Pa", "S", "T", "V", "W", "Wb",
	"a", "acre", "atm", "b", "bar", "bbl", "c", "cP", "cal", "cm", "cu",
	"d", "daN", "deg", "degC", "degF", "dm", "eV", "fC", "ft", "g", "gal",
	"h", "in", "kHz", "kPa", "kV", "keV", "kgf", "km", "lbf", "lbm", "mA",
	"mC", "mD", "mGal", "mL", "mS", "mT", "mV", "mW", "mg", "min", "mm",
	"mohm", "ms", "nC", "nW", "ns", "ohm", "pC", "pPa", "ppdk", "ppk",
	"ppm", "psi", "pu", "t", "ton", "uA", "uC", "uPa", "uV", "um", "uohm",
	"upsi", "us",
)

func stringSet(vs ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set
}

// KnownUnit reports whether u is one of the standard unit symbols.
func KnownUnit(u string) bool {
	_, ok := standardUnits[u]
	return ok
}

// KnownProperty reports whether p is a standard property value.
func KnownProperty(p string) bool {
	_, ok := propertyValues[p]
	return ok
}

// KnownFrameIndexType reports whether t is a standard frame index type.
func KnownFrameIndexType(t string) bool {
	_, ok := frameIndexTypes[t]
	return ok
}

// KnownZoneDomain reports whether d is a standard zone domain.
func KnownZoneDomain(d string) bool {
	_, ok := zoneDomains[d]
	return ok
}

// KnownProcessStatus reports whether s is a standard process status.
func KnownProcessStatus(s string) bool {
	_, ok := processStatuses[s]
	return ok
}

// KnownCalibrationPhase reports whether p is a standard measurement phase.
func KnownCalibrationPhase(p string) bool {
	_, ok := calibrationPhases[p]
	return ok
}

// KnownEquipmentType reports whether t is a standard equipment type.
func KnownEquipmentType(t string) bool {
	_, ok := equipmentTypes[t]
	return ok
}

// KnownEquipmentLocation reports whether l is a standard equipment
// location.
func KnownEquipmentLocation(l string) bool {
	_, ok := equipmentLocations[l]
	return ok
}
