// Package chart reads org charts from YAML into orgunit trees.
//
// Two layouts are accepted. The nested layout mirrors the tree:
//
//	name: Company
//	units:
//	  - name: CEO
//	    value: 100000
//	  - name: IT
//	    units:
//	      - {name: Dev1, value: 60000}
//
// The flat layout lists every unit once and links it to its group with
// reports_to; exactly one unit reports to nobody:
//
//	units:
//	  - {name: Company, group: true}
//	  - {name: CEO, value: 100000, reports_to: Company}
//
// A unit with a units key (even an empty list), with group: true, or with
// reports in the flat layout is a group. Any other unit is an individual
// whose value defaults to 0. Names must be unique within a chart.
package chart
