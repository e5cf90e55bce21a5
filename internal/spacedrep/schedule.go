package spacedrep

// BaseIntervals defines the expanding interval schedule in days.
// Stage 0 = a new or struggling word.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// MaxStage is the highest stage index in BaseIntervals.
const MaxStage = 5

// GraduationStage is the stage at which a word graduates.
const GraduationStage = 6

// GraduatedIntervalDays is the review interval for graduated words.
const GraduatedIntervalDays = 90
