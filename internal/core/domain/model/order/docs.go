// Package order contains the Order aggregate for the shipping domain.
//
// An Order carries the well-typed delivery features prepared upstream
// (transit budget in days, destination distance, package count) and the
// shipping decision produced by a batch run: either an Assignment naming the
// winning carrier service, or an explicit unassigned outcome. The Status
// state machine keeps the record and its assignment consistent.
package order
