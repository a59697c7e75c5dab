// Package panel defines the protocol shared by every navigable view hosted in
// a panel: construction results, the closed command set, outcomes the host
// must apply, and the drawing surface views render into.
//
// A host owns one stack of states per panel. It feeds each event to the top
// state of the focused panel and applies the returned Outcome. States never
// reach into the host; anything that affects other panels is expressed as an
// Outcome.
package panel
