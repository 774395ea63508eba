// Package artmap implements supervised resonance classification on top of
// two engine instances. An input-side network (ART a) clusters input
// patterns, a target-side network (ART b) clusters target patterns, and a
// map field records which input category predicts which target category.
//
// Training is a search loop with match tracking: when the winning input
// category is already associated with a different target category, the
// effective input vigilance is raised and the search moves on to the next
// candidate, creating a fresh input category when no candidate is left.
// The raised vigilance is local to a single Train call; the input network
// always keeps its baseline vigilance.
package artmap
