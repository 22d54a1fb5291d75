// Package hcl loads task definitions written in HCL and translates them into
// the format-agnostic config.Model.
//
// A file may declare any number of top-level `task` blocks and `locals`
// blocks:
//
//	locals {
//	  urgent = 1
//	}
//
//	task "deploy" {
//	  name       = "Deploy"
//	  priority   = local.urgent + 1
//	  depends_on = ["build"]
//
//	  subtask "deploy.notify" {
//	    priority = 5
//	  }
//	}
//
// The `priority` attribute is an expression that must evaluate to a whole
// number, or to null for "no priority". Locals from all loaded files are
// visible to every priority expression as `local.<name>`.
package hcl
