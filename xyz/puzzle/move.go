// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"fmt"
	"strings"
)

// Keys are the move keys: six layer turns and three whole cube turns.
type Keys int32

const (
	KeyR Keys = iota
	KeyL
	KeyU
	KeyD
	KeyF
	KeyB

	// KeyX turns the whole cube like R.
	KeyX

	// KeyY turns the whole cube like U.
	KeyY

	// KeyZ turns the whole cube like F.
	KeyZ

	KeysN
)

var keyNames = [KeysN]string{"R", "L", "U", "D", "F", "B", "X", "Y", "Z"}

func (k Keys) String() string {
	if k < 0 || k >= KeysN {
		return "?"
	}
	return keyNames[k]
}

// Whole returns whether the key turns the whole cube.
func (k Keys) Whole() bool {
	return k >= KeyX
}

// Face returns the face the key turns about.
func (k Keys) Face() Faces {
	switch k {
	case KeyX:
		return Right
	case KeyY:
		return Up
	case KeyZ:
		return Front
	}
	return Faces(k)
}

// Move is one turn of a layer or of the whole cube.
type Move struct {

	// Key is the layer or axis turned.
	Key Keys

	// Reverse turns counterclockwise as seen facing the face.
	Reverse bool

	// Double turns by half a turn.
	Double bool

	// Local refers the key to the sides of the cube in its own
	// coordinates instead of the faces seen from the camera.
	Local bool
}

// Angle returns the rotation angle in degrees about the outward
// normal of the face of the move.
func (m Move) Angle() float32 {
	a := float32(-90)
	if m.Double {
		a = -180
	}
	if m.Reverse {
		a = -a
	}
	return a
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	m.Reverse = !m.Reverse
	return m
}

// String returns the move in standard notation: the key followed by
// ' for reverse or 2 for double, with a trailing * for local moves.
func (m Move) String() string {
	s := m.Key.String()
	if m.Double {
		s += "2"
		if m.Reverse {
			s += "'"
		}
	} else if m.Reverse {
		s += "'"
	}
	if m.Local {
		s += "*"
	}
	return s
}

// ParseMove parses a move in the notation of [Move.String].
func ParseMove(s string) (Move, error) {
	var m Move
	rest := strings.TrimSpace(s)
	if rest == "" {
		return m, fmt.Errorf("puzzle.ParseMove: empty move")
	}
	key := strings.ToUpper(rest[:1])
	found := false
	for k, nm := range keyNames {
		if nm == key {
			m.Key = Keys(k)
			found = true
			break
		}
	}
	if !found {
		return m, fmt.Errorf("puzzle.ParseMove: unknown key in %q", s)
	}
	for _, r := range rest[1:] {
		switch r {
		case '2':
			m.Double = true
		case '\'':
			m.Reverse = true
		case '*':
			m.Local = true
		default:
			return m, fmt.Errorf("puzzle.ParseMove: unknown modifier %q in %q", r, s)
		}
	}
	return m, nil
}

// ParseMoves parses a space separated sequence of moves.
func ParseMoves(s string) ([]Move, error) {
	var ms []Move
	for _, f := range strings.Fields(s) {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// FormatMoves returns the moves in notation, separated by spaces.
func FormatMoves(ms []Move) string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	return b.String()
}

const (
	packReverse = 1 << (4 + iota)
	packDouble
	packLocal
)

// Pack returns the move packed into an integer, for compact logs.
func (m Move) Pack() int {
	p := int(m.Key)
	if m.Reverse {
		p |= packReverse
	}
	if m.Double {
		p |= packDouble
	}
	if m.Local {
		p |= packLocal
	}
	return p
}

// UnpackMove returns the move packed by [Move.Pack].
func UnpackMove(p int) Move {
	return Move{
		Key:     Keys(p & 0xf),
		Reverse: p&packReverse != 0,
		Double:  p&packDouble != 0,
		Local:   p&packLocal != 0,
	}
}

// moveFor returns the move that turns the given face, or the whole cube
// about it, by the given angle in degrees, rounded to quarter turns.
func moveFor(face Faces, angle float32, whole bool) Move {
	m := Move{Key: Keys(face)}
	m.Double = max(angle, -angle) > 135
	m.Reverse = angle > 0
	if whole {
		m.Key = KeyX + Keys(face/2)
		if face%2 == 1 {
			m.Reverse = !m.Reverse
		}
	}
	return m
}

// localMove returns the local move that turns the given side, or
// the whole cube about it, by the given angle in degrees.
func localMove(side Sides, angle float32, whole bool) Move {
	m := moveFor(Faces(side), angle, whole)
	m.Local = true
	return m
}
