package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified representation of an upgrade plan, merged from
// every file the loader was pointed at.
type Model struct {
	// Plan carries plan-wide metadata; nil when no plan block appears.
	Plan *PlanMeta

	// Locals holds unevaluated expressions from locals blocks, keyed by
	// name. The app evaluates them once inventory is in scope.
	Locals map[string]hcl.Expression

	// Stages in file order. Execution order is decided by the planner,
	// never by position.
	Stages []*Stage
}

// PlanMeta is the format-agnostic representation of a plan block.
type PlanMeta struct {
	Name            string
	RequiredVersion string
}

// Stage is the format-agnostic representation of a stage block: one unit
// of work, bound to a registered engine.
type Stage struct {
	// EngineType names the engine that runs this stage.
	EngineType string

	// Name identifies the stage; depends_on entries refer to it.
	Name string

	// DependsOn lists the names of stages that must run first.
	DependsOn []string

	// Timeout is an optional Go duration string bounding the stage.
	Timeout string

	// Arguments is the raw arguments block body, decoded into the
	// engine's input struct at execution time. Nil when absent.
	Arguments hcl.Body
}
