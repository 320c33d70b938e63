// Package hcl_adapter implements config.Loader for HCL option files.
//
// Top-level attributes become options named after the attribute. Blocks
// open a namespace named after the block type followed by its labels, so
//
//	pp {
//	  width = 120
//	}
//	trace "Elab" {
//	  step = true
//	}
//
// yields `pp.width := 120` and `trace.Elab.step := true`.
package hcl_adapter
