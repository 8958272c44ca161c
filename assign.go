package crescendo

import (
	"fmt"
	"sort"
)

// Pairing decides which random-phase trajectory each voice converges from.
type Pairing string

const (
	// PairByVoice keeps every voice on the trajectory drawn for it.
	PairByVoice Pairing = "voice"
	// PairByRank hands the trajectories out in pitch order: the trajectory
	// ending lowest goes to the voice with the lowest target, and so on.
	PairByRank Pairing = "rank"
)

func (p Pairing) valid() bool { return p == PairByVoice || p == PairByRank }

type Assigner struct {
	MinFreq, MaxFreq float64
	Wander           bool
	Deviation        float64
	Pairing          Pairing
	Rand             *Rand
}

type trajectory struct{ start, end float64 }

// Assign enumerates the plan's voices and sets their frequencies.  Draws
// are made in this order:
//
//	for each voice, in Plan.Voices order: start, then wander (if Wander)
//	for each staff, for each replica: one detune
//
// Pairing only permutes trajectories after all draws are made.
func (a *Assigner) Assign(plan Plan) ([]*Voice, error) {
	voices := plan.Voices()
	for _, v := range voices {
		f, err := v.Note.Freq()
		if err != nil {
			return nil, fmt.Errorf("%s note %d: %w", v.Staff, v.Index, err)
		}
		v.TargetFreq = f
	}

	traj := make([]trajectory, len(voices))
	for i := range traj {
		t := &traj[i]
		t.start = a.Rand.Uniform(a.MinFreq, a.MaxFreq)
		t.end = t.start
		if a.Wander {
			t.end = a.Rand.Uniform(a.MinFreq, a.MaxFreq)
		}
	}

	for _, s := range Staffs {
		part := plan.Part(s)
		if len(part.Notes) == 0 {
			continue
		}
		for r := 0; r < part.Voices; r++ {
			d := a.Rand.Uniform(-a.Deviation, a.Deviation)
			for _, v := range voices {
				if v.Staff == s && v.Replica == r {
					v.Detune = d
				}
			}
		}
	}

	switch a.Pairing {
	case PairByVoice:
		for i, v := range voices {
			v.StartFreq, v.WanderFreq = traj[i].start, traj[i].end
		}
	case PairByRank:
		sort.SliceStable(traj, func(i, j int) bool { return traj[i].end < traj[j].end })
		byTarget := append([]*Voice(nil), voices...)
		sort.SliceStable(byTarget, func(i, j int) bool { return byTarget[i].TargetFreq < byTarget[j].TargetFreq })
		for i, v := range byTarget {
			v.StartFreq, v.WanderFreq = traj[i].start, traj[i].end
		}
	default:
		return nil, fmt.Errorf("%w: unknown pairing %q", ErrInvalidConfig, a.Pairing)
	}
	return voices, nil
}
