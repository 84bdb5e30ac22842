// Package symmetry enumerates the equivalence classes of a profile under
// voter reordering and candidate relabeling, and uses them to check two
// axioms of voting rules:
//
//	anonymity   the winners do not depend on the order of the voters
//	neutrality  renaming candidates renames the winners the same way
//
// All enumerations are exhaustive and factorial in size; keep profiles
// small (a handful of voters and candidates).
package symmetry
