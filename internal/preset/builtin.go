package preset

import "github.com/rcliao/easeit/internal/model"

// Preset groups, in panel order.
const (
	GroupSymmetric  = "Symmetric"
	GroupAsymmetric = "Asymmetric"
	GroupOneSided   = "One-Sided"
	GroupAdvanced   = "Advanced"
	GroupCustom     = "Custom"
)

func ratio(name, group string, easeIn, easeOut float64) Preset {
	return Preset{
		Name:   name,
		Group:  group,
		Kind:   KindRatio,
		Ratios: model.RatioPair{EaseIn: easeIn, EaseOut: easeOut},
	}
}

func profile(name string, pts ...model.ProfilePoint) Preset {
	return Preset{
		Name:    name,
		Group:   GroupAdvanced,
		Kind:    KindProfile,
		Profile: model.Profile(pts),
	}
}

const on = true

var pt = model.P

var builtins = []Preset{
	ratio("Default", GroupSymmetric, 0.33, 0.33),
	ratio("Just Fine", GroupSymmetric, 0.45, 0.45),
	ratio("Cubic", GroupSymmetric, 0.65, 0.65),
	ratio("Exponential", GroupSymmetric, 0.87, 0.87),
	ratio("Extreme", GroupSymmetric, 0.95, 0.95),
	ratio("Linear", GroupSymmetric, model.MinRatio, model.MinRatio),
	ratio("Max", GroupSymmetric, 1.0, 1.0),

	ratio("Smooth", GroupAsymmetric, 0.60, 0.40),
	ratio("Easy", GroupAsymmetric, 0.90, 0.30),
	ratio("Super Smooth", GroupAsymmetric, 0.95, 0.50),
	ratio("Smooth Out", GroupAsymmetric, 0.40, 0.60),
	ratio("Easy Out", GroupAsymmetric, 0.30, 0.90),
	ratio("Super Smooth Out", GroupAsymmetric, 0.50, 0.95),

	ratio("Ease In Only", GroupOneSided, 0.90, model.MinRatio),
	ratio("Ease Out Only", GroupOneSided, model.MinRatio, 0.90),

	profile("Explosive",
		pt(0, 0, 0, 65, 0, 0.1),
		pt(0.321, 1.189, 0, 81.207, 0, 19.154),
		pt(1, 1, 0, 65, 0, 0.1),
	),
	profile("Springy",
		pt(0, 0, 0, 39.907, 0, 33),
		pt(0.217, -0.312, 0, 57.248, 0, 67.792),
		pt(0.529, 1.312, 0, 46.008, 0, 35.041),
		pt(0.773, 0.928, 0, 39.907, 0, 28.093),
		pt(1, 1, 0, 39.907, 0, 33),
	),
	profile("Overshoot 1",
		pt(0, 0, 0, 72.124, 0, 45),
		pt(0.412, 1.148, 0, 56.011, 0, 17.461),
		pt(1, 1, 0, 72.124, 0, 45),
	),
	profile("Overshoot 2",
		pt(0, 0, 0, 57.711, 0, 89.414),
		pt(0.5, 1.176, 0, 50, 0, 36.321),
		pt(1, 1, 0, 57.711, 0, 89.414),
	),
	profile("Anticipation 1",
		pt(0, 0, 0, 85, 0, 55.742),
		pt(0.235, -0.067, 0, 33, 0, 31.545),
		pt(1, 1, 0, 85, 0, 55.742),
	),
	profile("Anticipation 2",
		pt(0, 0, 0, 85, 0, 45),
		pt(0.317, -0.116, 0, 60, 0, 45),
		pt(1, 1, 0, 85, 0, 45),
	),
	profile("Anticipation 3",
		pt(0, 0, 0, 95, 0, 55),
		pt(0.5, -0.116, 0, 33, 0, 60),
		pt(1, 1, 0, 95, 0, 55),
	),
	profile("Easy Going",
		pt(0, 0, 0, 62.286, 0, 33),
		pt(0.182, -0.077, 0, 33, 0, 40),
		pt(0.649, 1.07, 0, 60, 0, 29.209),
		pt(1, 1, 0, 62.286, 0, 33),
	),
	profile("Anticipation + Overshoot",
		pt(0, 0, 0, 62.286, 0, 33),
		pt(0.276, -0.097, 0, 41.892, 0, 45),
		pt(0.567, 1.084, 0, 85, 0, 29.209),
		pt(1, 1, 0, 62.286, 0, 33),
	),
	profile("Agitated",
		pt(0, 0, 0, 50, 0, 50),
		pt(0.12, 0.029, 0, 27.877, 0, 35.111),
		pt(0.3, -0.115, 0, 35.041, 0, 40.258),
		pt(0.68, 1.083, 0, 84, 0, 33),
		pt(1, 1, 0, 50, 0, 50),
	),
	profile("Very Late Stop",
		pt(0, 0, 0, 57.711, 0, 45, on, on, on),
		pt(0.238, 0.863, 0.75, 80, 0.75, 16.84, on, on, on),
		pt(1, 1, 0, 57.711, 0, 45, on, on, on),
	),
	profile("Overshoot x3",
		pt(0, 0, 0, 70, 0, 90),
		pt(0.427, 1.3, 0, 23.423, 0, 35.041),
		pt(0.596, 0.85, 0, 39.907, 0, 28.093),
		pt(0.767, 1.05, 0, 39.907, 0, 21.693),
		pt(1, 1, 0, 70, 0, 90),
	),
	profile("Spring Back",
		pt(0, 0, 0, 42.456, 0, 0.1, on, on, on),
		pt(0.147, 1.448, 0, 45, 0, 35, on, on, on),
		pt(0.318, 0.776, 0, 37.685, 0, 30.603, on, on, on),
		pt(0.49, 1.108, 0, 33.226, 0, 31.246, on, on, on),
		pt(0.655, 0.947, 0, 36.147, 0, 29.785, on, on, on),
		pt(0.827, 1.014, 0, 35.987, 0, 23.974, on, on, on),
		pt(1, 1, 0, 42.456, 0, 0.1, on, on, on),
	),
	profile("Bouncy",
		pt(0, 0, 1.024, 23.549, 0, 86.165, on, on, on),
		pt(0.412, 1, 0, 0.1, -2.481, 26.738, on, on, on),
		pt(0.592, 0.829, 0, 36.181, 0, 39.572, on, on, on),
		pt(0.776, 1, 2.631, 21.96, -1.613, 31.677, on, on, on),
		pt(0.845, 0.951, 0, 33.135, 0, 39.94, on, on, on),
		pt(0.917, 1, 1.65, 23.219, -0.677, 32.684, on, on, on),
		pt(0.962, 0.986, 0, 32.082, 0, 40.356, on, on, on),
		pt(1, 1, 1.024, 23.549, 0, 86.165, on, on, on),
	),
	profile("Weird",
		pt(0, 0, 0, 90, 0, 90),
		pt(0.289, -0.185, -2.55, 0.1, 2.55, 0.1),
		pt(1, 1, 0, 90, 0, 90),
	),
}
