// Package motion animates page nodes frame by frame.
//
// An Animator owns a set of running tasks. Each task binds a node and a
// kind; starting a task displaces any running task with the same binding,
// so a node never runs two counters or two fades at once. The main loop
// calls Update once per frame with the current time and tasks apply their
// eased progress to node visual state.
//
// Reduced motion is captured once at construction. When set, starting a
// task applies its final state immediately and nothing is scheduled.
package motion
