package scenario

import (
	"echolab/internal/core"
	"echolab/internal/sim"
	"echolab/internal/vessel"
)

func init() {
	Register("carotid", Carotid)
	Register("bifurcation", Bifurcation)
	Register("capillary", Capillary)
}

// Carotid is a single wide vessel crossing the field with a gentle arc and
// a clustered cell population, the classic teaching layout.
func Carotid() Scenario {
	return Scenario{
		Name: "carotid",
		Layouts: []vessel.Layout{{
			Name: "carotid",
			Anchors: []core.Vec2{
				{X: 0.08, Y: 0.42}, {X: 0.35, Y: 0.52}, {X: 0.65, Y: 0.46}, {X: 0.95, Y: 0.56},
			},
			Radius:      0.055,
			FlowRate:    0.05,
			Particles:   26,
			ClusterSize: 3,
		}},
		Params: sim.DefaultParams(),
	}
}

// Bifurcation is a parent vessel splitting into two branches; the branches
// share the parent's trailing anchor so the junction reads as one tree.
func Bifurcation() Scenario {
	return Scenario{
		Name: "bifurcation",
		Layouts: []vessel.Layout{
			{
				Name: "parent",
				Anchors: []core.Vec2{
					{X: 0.08, Y: 0.5}, {X: 0.28, Y: 0.5}, {X: 0.46, Y: 0.48},
				},
				Radius:    0.05,
				FlowRate:  0.06,
				Particles: 16,
			},
			{
				Name: "upper-branch",
				Anchors: []core.Vec2{
					{X: 0.46, Y: 0.48}, {X: 0.66, Y: 0.34}, {X: 0.95, Y: 0.26},
				},
				Radius:    0.032,
				FlowRate:  0.085,
				Particles: 10,
			},
			{
				Name: "lower-branch",
				Anchors: []core.Vec2{
					{X: 0.46, Y: 0.48}, {X: 0.66, Y: 0.62}, {X: 0.95, Y: 0.72},
				},
				Radius:    0.032,
				FlowRate:  0.085,
				Particles: 10,
			},
		},
		Params: sim.DefaultParams(),
	}
}

// Capillary is a bed of thin slow vessels with sparse solo cells; echoes are
// faint and frequent rather than strong and isolated.
func Capillary() Scenario {
	p := sim.DefaultParams()
	p.EchoOpacity = 0.7
	p.EchoDecay = 0.8
	return Scenario{
		Name: "capillary",
		Layouts: []vessel.Layout{
			{
				Name: "cap-a",
				Anchors: []core.Vec2{
					{X: 0.1, Y: 0.24}, {X: 0.45, Y: 0.3}, {X: 0.78, Y: 0.22}, {X: 0.95, Y: 0.3},
				},
				Radius:    0.014,
				FlowRate:  0.02,
				Particles: 8,
			},
			{
				Name: "cap-b",
				Anchors: []core.Vec2{
					{X: 0.12, Y: 0.5}, {X: 0.4, Y: 0.44}, {X: 0.7, Y: 0.55}, {X: 0.94, Y: 0.5},
				},
				Radius:    0.014,
				FlowRate:  0.025,
				Particles: 8,
			},
			{
				Name: "cap-c",
				Anchors: []core.Vec2{
					{X: 0.1, Y: 0.76}, {X: 0.5, Y: 0.7}, {X: 0.82, Y: 0.78}, {X: 0.95, Y: 0.72},
				},
				Radius:    0.014,
				FlowRate:  0.018,
				Particles: 8,
			},
		},
		Params: p,
	}
}
