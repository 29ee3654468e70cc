package roadspaces

// CodeNumericFailure is the fatal code for a roadspace whose reference
// line could not be built at all (e.g. height/torsion domain mismatch); it
// is also reported as a warning for a road object whose pose can't be
// evaluated.
const CodeNumericFailure = "NumericFailure"
