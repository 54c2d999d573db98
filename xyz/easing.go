// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/core/math32"
)

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 { return t }

// InOutCubic accelerates to the midpoint and then decelerates, cubically.
func InOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// InOutQuad accelerates to the midpoint and then decelerates, quadratically.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	f := -2*t + 2
	return 1 - f*f/2
}

// OutQuad decelerates quadratically.
func OutQuad(t float32) float32 {
	return 1 - (1-t)*(1-t)
}

// Easings are the easing functions by name, as used in settings.
var Easings = map[string]EasingFunc{
	"linear":       Linear,
	"in-out-cubic": InOutCubic,
	"in-out-quad":  InOutQuad,
	"out-quad":     OutQuad,
}

// EasingByName returns the easing function with the given name.
// The empty name is [Linear]; an unknown name is logged and
// also yields [Linear].
func EasingByName(name string) EasingFunc {
	if name == "" {
		return Linear
	}
	ef, ok := Easings[name]
	if !ok {
		slog.Warn("xyz.EasingByName: unknown easing, using linear", "name", name)
		return Linear
	}
	return ef
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() math32.Quat {
	return math32.NewQuat(0, 0, 0, 1)
}

// QuatNear returns whether a and b represent the same rotation
// within the given tolerance, treating q and -q as equal.
func QuatNear(a, b math32.Quat, tol float32) bool {
	return 1-math32.Abs(a.Dot(b)) <= tol
}
