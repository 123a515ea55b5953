// Package manifest loads HCL build manifests for batch shader translation.
//
// A manifest lists the shaders of a project, one block per shader:
//
//	shader "triangle_vs" {
//	    source = "shaders/triangle_vs.wgsl"
//	    output = "gen/triangle_vs.metal"
//	}
//
//	shader "triangle_fs" {
//	    source = "shaders/triangle_fs.wgsl"
//	}
//
// The output attribute is optional; when omitted, the output path is the
// source path with its extension replaced by .metal. Shader names must be
// unique within a manifest. Blocks keep their declaration order, so batch
// builds are deterministic.
package manifest
