/*
Package modalk decides satisfiability and validity of formulas of the
normal modal logic K by constructing a prefixed signed semantic tableau.

modalk strives to be a small, well-factored tableau engine rather than a
full theorem prover. It deliberately covers only K: no frame conditions
(reflexivity, transitivity, symmetry) are imposed on the accessibility
relation built up during expansion. Package structure is as follows:

■ formula: Package formula implements the modal-propositional formula AST
(Atom, Not, And, Or, Implies, Box, Diamond), structural equality and a
pretty-printer.

■ world: Package world implements the prefix allocator and accessibility
store that a tableau mutates as it discovers new worlds.

■ tableau: Package tableau implements the branch type, the rule engine and
the expansion driver: the core decision procedure.

■ witness: Package witness provides a read-only snapshot of a finished
tableau (proof tree, accessibility graph, per-world valuation) for external
visualizers.

■ parse: Package parse tokenizes and parses the surface syntax described in
the documentation of Parse.

The root package ties these together into the decision facade:
Parse, IsSatisfiable, IsValid and Decide.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package modalk
