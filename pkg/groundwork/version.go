// Package groundwork holds module-level metadata shared by the library and
// the faults CLI.
package groundwork

// Version is the module version reported by the faults CLI.
const Version = "0.1.0"
