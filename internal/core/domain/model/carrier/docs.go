// Package carrier contains the Carrier aggregate and its related value
// objects for the shipping domain.
//
// A Carrier is a shipping provider offering an ordered catalog of
// ServiceOption delivery tiers. Each tier carries a per-package cost, a
// transit time, and a derived total reach. The Ranking value object holds
// the externally configured carrier priorities used to break cost ties
// deterministically across carriers.
package carrier
