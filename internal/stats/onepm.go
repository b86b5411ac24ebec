package stats

import "math"

// Формулы оценки разового максимума (1ПМ) по рабочей серии.
// Метод по умолчанию - среднее Бжицки и Эпли.

// Estimate1PM оценивает 1ПМ по весу и повторам серии
func Estimate1PM(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round((brzycki(weight, reps)+epley(weight, reps))/2*100) / 100
}

// brzycki формула Бжицки: 1RM = weight * (36 / (37 - reps)).
// Точнее всего при reps < 10
func brzycki(weight float64, reps int) float64 {
	if reps >= 37 {
		return weight
	}
	return weight * (36.0 / float64(37-reps))
}

// epley формула Эпли: 1RM = weight * (1 + 0.0333 * reps).
// Лучше подходит для многоповторных серий
func epley(weight float64, reps int) float64 {
	return weight * (1 + 0.0333*float64(reps))
}
