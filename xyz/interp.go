// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Interps is a bit mask of the kinds of interpolation in flight.
type Interps int32

const (
	// InterpPos is a position transition.
	InterpPos Interps = 1 << iota

	// InterpQuat is a rotation transition.
	InterpQuat

	// InterpArc is an arc transition, which moves the position
	// around the parent origin.
	InterpArc
)

// DefaultInterval is the transition interval used when neither the
// request nor the node specify one.
const DefaultInterval = 250 * time.Millisecond

// Interp holds the interpolation state of a node. A zero timestamp
// means that kind of transition is idle.
type Interp struct {

	// Pos1 and Pos2 are the start and target positions.
	Pos1, Pos2 math32.Vector3

	// PosTs is the start time of the position transition.
	PosTs time.Time

	// PosInterval is the duration of the position transition.
	PosInterval time.Duration

	// Quat1 and Quat2 are the start and target rotations.
	Quat1, Quat2 math32.Quat

	// QuatTs is the start time of the rotation transition.
	QuatTs time.Time

	// QuatInterval is the duration of the rotation transition.
	QuatInterval time.Duration

	// Axis1 and Axis2 are the start and target rotations applied
	// to ArcBase for an arc transition.
	Axis1, Axis2 math32.Quat

	// AxisTs is the start time of the arc transition.
	AxisTs time.Time

	// AxisInterval is the duration of the arc transition.
	AxisInterval time.Duration

	// ArcBase is the position at the start of the arc transition.
	ArcBase math32.Vector3

	// Interval is the default duration for transitions of this node.
	Interval time.Duration

	// Ease is the name of the easing function, from [Easings].
	Ease string
}

// Active returns the kinds of transitions in flight.
func (ip *Interp) Active() Interps {
	var in Interps
	if !ip.PosTs.IsZero() {
		in |= InterpPos
	}
	if !ip.QuatTs.IsZero() {
		in |= InterpQuat
	}
	if !ip.AxisTs.IsZero() {
		in |= InterpArc
	}
	return in
}

// interval resolves a requested interval.
func (ip *Interp) interval(req time.Duration) time.Duration {
	if req > 0 {
		return req
	}
	if ip.Interval > 0 {
		return ip.Interval
	}
	return DefaultInterval
}

// progress returns the eased progress of a transition started at ts,
// and whether it is complete.
func (ip *Interp) progress(now, ts time.Time, interval time.Duration) (float32, bool) {
	elapsed := now.Sub(ts)
	if elapsed >= interval || interval <= 0 {
		return 1, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return EasingByName(ip.Ease)(float32(elapsed) / float32(interval)), false
}

// SetInterp sets the default interval and easing name for transitions.
func (nb *NodeBase) SetInterp(interval time.Duration, ease string) {
	nb.Interp.Interval = interval
	nb.Interp.Ease = ease
}

// now returns the current time from the scene clock.
func (nb *NodeBase) now() time.Time {
	if nb.Scene != nil {
		return nb.Scene.Now()
	}
	return time.Now()
}

// MoveTo starts a position transition to the given position. A zero
// interval uses the node's [Interp.Interval]. Any position or arc
// transition in flight is first completed.
func (nb *NodeBase) MoveTo(pos math32.Vector3, interval time.Duration) {
	nb.completeKinds(InterpPos | InterpArc)
	ip := &nb.Interp
	ip.Pos1 = nb.Pose.Pos
	ip.Pos2 = pos
	ip.PosInterval = ip.interval(interval)
	ip.PosTs = nb.now()
}

// RotateTo starts a rotation transition to the given rotation.
// Any rotation transition in flight is first completed.
func (nb *NodeBase) RotateTo(quat math32.Quat, interval time.Duration) {
	nb.completeKinds(InterpQuat)
	ip := &nb.Interp
	nb.Pose.Defaults()
	ip.Quat1 = nb.Pose.Quat
	ip.Quat2 = quat
	ip.QuatInterval = ip.interval(interval)
	ip.QuatTs = nb.now()
}

// ArcTo starts an arc transition: the position swings around the
// parent origin by the given axis rotation, ending exactly at pos,
// while the rotation goes to quat. Any transition in flight is
// first completed.
func (nb *NodeBase) ArcTo(axis math32.Quat, pos math32.Vector3, quat math32.Quat, interval time.Duration) {
	nb.completeKinds(InterpPos | InterpQuat | InterpArc)
	ip := &nb.Interp
	nb.Pose.Defaults()
	now := nb.now()
	iv := ip.interval(interval)
	ip.Axis1 = IdentityQuat()
	ip.Axis2 = axis
	ip.ArcBase = nb.Pose.Pos
	ip.Pos2 = pos
	ip.AxisInterval = iv
	ip.AxisTs = now
	ip.Quat1 = nb.Pose.Quat
	ip.Quat2 = quat
	ip.QuatInterval = iv
	ip.QuatTs = now
}

// UpdateInterpolation advances the transitions of this node to the
// given time, updating the local matrix if anything moved. It returns
// the kinds still in flight afterwards.
func (nb *NodeBase) UpdateInterpolation(now time.Time) Interps {
	ip := &nb.Interp
	act := ip.Active()
	if act == 0 {
		return 0
	}
	if act&InterpArc != 0 {
		t, done := ip.progress(now, ip.AxisTs, ip.AxisInterval)
		if done {
			nb.Pose.Pos = ip.Pos2
			ip.AxisTs = time.Time{}
		} else {
			axis := ip.Axis1
			axis.Slerp(ip.Axis2, t)
			nb.Pose.Pos = ip.ArcBase.MulQuat(axis)
		}
	} else if act&InterpPos != 0 {
		t, done := ip.progress(now, ip.PosTs, ip.PosInterval)
		if done {
			nb.Pose.Pos = ip.Pos2
			ip.PosTs = time.Time{}
		} else {
			nb.Pose.Pos = ip.Pos1.Lerp(ip.Pos2, t)
		}
	}
	if act&InterpQuat != 0 {
		t, done := ip.progress(now, ip.QuatTs, ip.QuatInterval)
		if done {
			nb.Pose.Quat = ip.Quat2
			ip.QuatTs = time.Time{}
		} else {
			nb.Pose.Quat = ip.Quat1
			nb.Pose.Quat.Slerp(ip.Quat2, t)
		}
	}
	nb.Pose.UpdateMatrix()
	return ip.Active()
}

// completeKinds warps the given kinds of transitions in flight
// on this node to their targets.
func (nb *NodeBase) completeKinds(kinds Interps) {
	ip := &nb.Interp
	act := ip.Active() & kinds
	if act == 0 {
		return
	}
	if act&(InterpPos|InterpArc) != 0 {
		nb.Pose.Pos = ip.Pos2
		ip.PosTs = time.Time{}
		ip.AxisTs = time.Time{}
	}
	if act&InterpQuat != 0 {
		nb.Pose.Quat = ip.Quat2
		ip.QuatTs = time.Time{}
	}
	nb.UpdateLocalMatrix()
}

// CompleteInterpolation returns the kinds of transitions in flight on
// this node, and on all descendants if recurse is set. If warp is set,
// those transitions are snapped to their targets and cleared.
func (nb *NodeBase) CompleteInterpolation(warp, recurse bool) Interps {
	act := nb.Interp.Active()
	if warp {
		nb.completeKinds(act)
	}
	if !recurse {
		return act
	}
	for _, kid := range nb.Children {
		if kn := AsNode(kid); kn != nil {
			act |= kn.CompleteInterpolation(warp, true)
		}
	}
	return act
}

// UpdateInterpolations advances the transitions of this node and all
// of its descendants, returning the kinds still in flight.
func (nb *NodeBase) UpdateInterpolations(now time.Time) Interps {
	var act Interps
	nb.WalkDown(func(n tree.Node) bool {
		if kn := AsNode(n); kn != nil {
			act |= kn.UpdateInterpolation(now)
		}
		return tree.Continue
	})
	return act
}
