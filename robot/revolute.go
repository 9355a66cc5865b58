// Package robot describes the planar revolute manipulators that datasets are
// generated for. The descriptions are pure data; kinematics and collision
// checking belong to the external generator consuming them.
package robot

import (
	"fmt"
	"sort"

	"go.viam.com/planargen/utils"
)

// World is the name of the kinematic chain root in serialized descriptions.
const World = "world"

const revoluteJointType = "revolute"

// defaultJointLimitDeg bounds every revolute joint symmetrically.
const defaultJointLimitDeg = 180.0

// Limit represents the lower and upper bounds of a joint in radians.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// linkLengthForDOF is the per-link length catalog scenes pair with an arm of a
// given degrees of freedom.
var linkLengthForDOF = map[int]float64{
	2: 3.5,
	3: 2,
	7: 1,
}

// LinkLengthForDOF returns the link length catalog scenes use for an arm with
// the given degrees of freedom.
func LinkLengthForDOF(dof int) (float64, error) {
	length, ok := linkLengthForDOF[dof]
	if !ok {
		return 0, NewUnsupportedDOFError(dof)
	}
	return length, nil
}

// SupportedDOFs returns the degrees of freedom with a known link length, sorted.
func SupportedDOFs() []int {
	dofs := make([]int, 0, len(linkLengthForDOF))
	for dof := range linkLengthForDOF {
		dofs = append(dofs, dof)
	}
	sort.Ints(dofs)
	return dofs
}

// RevolutePlanar describes a planar arm built from equal revolute links.
type RevolutePlanar struct {
	linkLength float64
	linkWidth  float64
	dof        int
	limits     []Limit
}

// NewRevolutePlanar returns the description of a planar arm with the given
// link geometry and degrees of freedom.
func NewRevolutePlanar(linkLength, linkWidth float64, dof int) (*RevolutePlanar, error) {
	if linkLength <= 0 || linkWidth <= 0 {
		return nil, newBadLinkDimensionsError(linkLength, linkWidth)
	}
	if dof < 1 {
		return nil, newBadDOFError(dof)
	}

	limits := make([]Limit, 0, dof)
	for i := 0; i < dof; i++ {
		limits = append(limits, Limit{
			Min: -utils.DegToRad(defaultJointLimitDeg),
			Max: utils.DegToRad(defaultJointLimitDeg),
		})
	}
	return &RevolutePlanar{linkLength: linkLength, linkWidth: linkWidth, dof: dof, limits: limits}, nil
}

// LinkLength returns the length of each link.
func (r *RevolutePlanar) LinkLength() float64 {
	return r.linkLength
}

// LinkWidth returns the width of each link.
func (r *RevolutePlanar) LinkWidth() float64 {
	return r.linkWidth
}

// DOF returns the arm's degrees of freedom.
func (r *RevolutePlanar) DOF() int {
	return r.dof
}

// Limits returns the motion bounds of each joint in radians.
func (r *RevolutePlanar) Limits() []Limit {
	limits := make([]Limit, len(r.limits))
	copy(limits, r.limits)
	return limits
}

// Name returns a stable identifier derived from the arm's shape.
func (r *RevolutePlanar) Name() string {
	return fmt.Sprintf("revolute_planar_%dd", r.dof)
}

func (r *RevolutePlanar) String() string {
	return fmt.Sprintf("%d dof planar arm, links %.2f long and %.2f wide", r.dof, r.linkLength, r.linkWidth)
}

// LinkConfig is the serializable description of one link.
type LinkConfig struct {
	ID     string  `json:"id"`
	Parent string  `json:"parent"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// JointConfig is the serializable description of one joint. Limits are stored
// in degrees.
type JointConfig struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Parent string  `json:"parent"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ModelConfig describes an arm's kinematic chain in a serializable form.
type ModelConfig struct {
	Name   string        `json:"name"`
	DOF    int           `json:"dof"`
	Links  []LinkConfig  `json:"links"`
	Joints []JointConfig `json:"joints"`
}

// ModelConfig returns the serializable chain description, alternating joints
// and links from the world frame outward.
func (r *RevolutePlanar) ModelConfig() *ModelConfig {
	config := &ModelConfig{
		Name:   r.Name(),
		DOF:    r.dof,
		Links:  make([]LinkConfig, 0, r.dof),
		Joints: make([]JointConfig, 0, r.dof),
	}

	parent := World
	for i, limit := range r.limits {
		joint := JointConfig{
			ID:     fmt.Sprintf("joint%d", i),
			Type:   revoluteJointType,
			Parent: parent,
			Min:    utils.RadToDeg(limit.Min),
			Max:    utils.RadToDeg(limit.Max),
		}
		link := LinkConfig{
			ID:     fmt.Sprintf("link%d", i),
			Parent: joint.ID,
			Length: r.linkLength,
			Width:  r.linkWidth,
		}
		config.Joints = append(config.Joints, joint)
		config.Links = append(config.Links, link)
		parent = link.ID
	}
	return config
}
