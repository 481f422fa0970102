package planner

// focusFractions maps energy level to the share of the session spent in
// concentrated work. The remainder is break time.
var focusFractions = map[EnergyLevel]float64{
	EnergySluggish:  0.70,
	EnergyWired:     0.75,
	EnergyAnxious:   0.75,
	EnergyEnergized: 0.85,
	EnergyBalanced:  0.80,
}

const minBreakMinutes = 5

// ComputeTimeSplit divides timeAvailable into focus and break minutes.
// Always: focus + break == timeAvailable, both non-negative.
//
// Sessions longer than 15 minutes are guaranteed at least a 5 minute break;
// at the 15 minute tier the fraction alone decides and the break may be
// shorter. Callers must validate timeAvailable against TimeOptions first.
func ComputeTimeSplit(energy EnergyLevel, timeAvailable int) (focusTime, breakTime int) {
	fraction, ok := focusFractions[energy]
	if !ok {
		fraction = focusFractions[EnergyBalanced]
	}

	focusTime = int(float64(timeAvailable) * fraction)
	breakTime = timeAvailable - focusTime

	if breakTime < minBreakMinutes && timeAvailable > 15 {
		breakTime = minBreakMinutes
		focusTime = timeAvailable - minBreakMinutes
	}

	return focusTime, breakTime
}
